package insights

import (
	"testing"
	"time"

	"dineflow-backend/internal/models"
)

func at(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 15, 30, 0, 0, time.UTC)
}

func TestBuildAdminAnalyticsWindowSize(t *testing.T) {
	// The window is inclusive of both endpoints: days+1 buckets.
	tests := []struct {
		name      string
		now       time.Time
		days      int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "seven days across leap day",
			now:       at(2024, time.March, 1),
			days:      7,
			wantFirst: "2024-02-23",
			wantLast:  "2024-03-01",
		},
		{
			name:      "thirty days across month end",
			now:       at(2024, time.July, 15),
			days:      30,
			wantFirst: "2024-06-15",
			wantLast:  "2024-07-15",
		},
		{
			name:      "year boundary",
			now:       at(2025, time.January, 2),
			days:      7,
			wantFirst: "2024-12-26",
			wantLast:  "2025-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAdminAnalytics(tt.now, tt.days, nil, nil, nil, nil)
			if len(got.Trends) != tt.days+1 {
				t.Fatalf("len(Trends) = %d, want %d", len(got.Trends), tt.days+1)
			}
			if got.Trends[0].Date != tt.wantFirst {
				t.Errorf("first bucket = %s, want %s", got.Trends[0].Date, tt.wantFirst)
			}
			if got.Trends[len(got.Trends)-1].Date != tt.wantLast {
				t.Errorf("last bucket = %s, want %s", got.Trends[len(got.Trends)-1].Date, tt.wantLast)
			}
		})
	}
}

func TestBuildAdminAnalyticsZeroFill(t *testing.T) {
	got := BuildAdminAnalytics(at(2024, time.June, 10), 7, nil, nil, nil, nil)

	for _, point := range got.Trends {
		if point.AverageRating != 0 || point.OrderCount != 0 {
			t.Errorf("empty window bucket %s = %+v, want zeros", point.Date, point)
		}
	}
	if got.OverallRating != 0 || got.TotalReviews != 0 {
		t.Errorf("OverallRating/TotalReviews = %v/%v, want 0/0", got.OverallRating, got.TotalReviews)
	}
	if got.ReviewsTrend != 0 || got.RatingTrend != 0 {
		t.Errorf("trends = %v/%v, want 0/0 when both windows are empty", got.ReviewsTrend, got.RatingTrend)
	}
}

func TestBuildAdminAnalyticsBucketing(t *testing.T) {
	now := at(2024, time.June, 10)
	dish := oid(1)

	feedback := []models.Feedback{
		{
			CreatedAt: at(2024, time.June, 9),
			Items: []models.FeedbackItem{
				{MenuItemID: dish, Rating: 4},
				{MenuItemID: dish, Rating: 2},
			},
		},
		{
			CreatedAt: at(2024, time.June, 10),
			Items:     []models.FeedbackItem{{MenuItemID: dish, Rating: 5}},
		},
		{
			// Outside the 7-day window and outside the previous window too.
			CreatedAt: at(2024, time.January, 1),
			Items:     []models.FeedbackItem{{MenuItemID: dish, Rating: 1}},
		},
	}
	orders := []models.Order{
		{CreatedAt: at(2024, time.June, 9), Items: []models.OrderItem{{MenuItemID: dish, Quantity: 1}}},
		{CreatedAt: at(2024, time.June, 9), Items: []models.OrderItem{{MenuItemID: dish, Quantity: 2}}},
		{CreatedAt: at(2024, time.January, 1), Items: []models.OrderItem{{MenuItemID: dish, Quantity: 1}}},
	}

	got := BuildAdminAnalytics(now, 7, feedback, orders, nil, nil)

	byDate := make(map[string]TrendPoint)
	for _, point := range got.Trends {
		byDate[point.Date] = point
	}

	if p := byDate["2024-06-09"]; p.AverageRating != 3 || p.OrderCount != 2 {
		t.Errorf("2024-06-09 = %+v, want avg 3 and 2 orders", p)
	}
	if p := byDate["2024-06-10"]; p.AverageRating != 5 || p.OrderCount != 0 {
		t.Errorf("2024-06-10 = %+v, want avg 5 and 0 orders", p)
	}
	if got.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2 (out-of-window doc must be ignored)", got.TotalReviews)
	}
	// (4+2+5)/3 across the whole window.
	if got.OverallRating != 3.67 {
		t.Errorf("OverallRating = %v, want 3.67", got.OverallRating)
	}
}

func TestBuildAdminAnalyticsPeriodTrends(t *testing.T) {
	now := at(2024, time.June, 16)
	dish := oid(1)

	feedback := []models.Feedback{
		// Current window (June 9–16): two reviews averaging 4.
		{CreatedAt: at(2024, time.June, 10), Items: []models.FeedbackItem{{MenuItemID: dish, Rating: 5}}},
		{CreatedAt: at(2024, time.June, 15), Items: []models.FeedbackItem{{MenuItemID: dish, Rating: 3}}},
		// Previous window (June 1–8): one review averaging 2.
		{CreatedAt: at(2024, time.June, 5), Items: []models.FeedbackItem{{MenuItemID: dish, Rating: 2}}},
	}

	got := BuildAdminAnalytics(now, 7, feedback, nil, nil, nil)

	// (2-1)/1 * 100
	if got.ReviewsTrend != 100 {
		t.Errorf("ReviewsTrend = %v, want 100", got.ReviewsTrend)
	}
	// (4-2)/2 * 100
	if got.RatingTrend != 100 {
		t.Errorf("RatingTrend = %v, want 100", got.RatingTrend)
	}
}

func TestBuildAdminAnalyticsTrendZeroGuard(t *testing.T) {
	now := at(2024, time.June, 16)
	dish := oid(1)

	// Current window has data, previous window is empty: the percentage is
	// defined as 0 rather than infinity.
	feedback := []models.Feedback{
		{CreatedAt: at(2024, time.June, 10), Items: []models.FeedbackItem{{MenuItemID: dish, Rating: 5}}},
	}
	got := BuildAdminAnalytics(now, 7, feedback, nil, nil, nil)

	if got.ReviewsTrend != 0 {
		t.Errorf("ReviewsTrend = %v, want 0 when previous window is empty", got.ReviewsTrend)
	}
	if got.RatingTrend != 0 {
		t.Errorf("RatingTrend = %v, want 0 when previous window is empty", got.RatingTrend)
	}
}

func TestBuildAdminAnalyticsRollups(t *testing.T) {
	now := at(2024, time.June, 10)
	chefA, chefB := oid(30), oid(31)
	pasta, burger, salad := oid(1), oid(2), oid(3)

	menuItems := []models.MenuItem{
		{ID: pasta, Name: "Pasta", ChefID: chefA},
		{ID: burger, Name: "Burger", ChefID: chefB},
		{ID: salad, Name: "Salad", ChefID: chefB},
	}
	chefs := []models.User{
		{ID: chefA, Name: "Chef A", Role: models.RoleChef},
		{ID: chefB, Name: "Chef B", Role: models.RoleChef},
	}
	feedback := []models.Feedback{
		{
			CreatedAt: at(2024, time.June, 9),
			Items: []models.FeedbackItem{
				{MenuItemID: pasta, Rating: 5},
				{MenuItemID: burger, Rating: 2},
			},
		},
		{
			CreatedAt: at(2024, time.June, 10),
			Items:     []models.FeedbackItem{{MenuItemID: pasta, Rating: 4}},
		},
	}
	orders := []models.Order{
		{CreatedAt: at(2024, time.June, 9), Items: []models.OrderItem{
			{MenuItemID: pasta, Quantity: 1},
			{MenuItemID: burger, Quantity: 1},
		}},
		{CreatedAt: at(2024, time.June, 10), Items: []models.OrderItem{{MenuItemID: pasta, Quantity: 1}}},
	}

	got := BuildAdminAnalytics(now, 7, feedback, orders, menuItems, chefs)

	if got.ActiveChefs != 2 || got.TotalMenuItems != 3 {
		t.Errorf("ActiveChefs/TotalMenuItems = %d/%d, want 2/3", got.ActiveChefs, got.TotalMenuItems)
	}

	if got.MostLikedFood == nil || got.MostLikedFood.Name != "Pasta" {
		t.Errorf("MostLikedFood = %+v, want Pasta", got.MostLikedFood)
	}
	if got.MostHatedFood == nil || got.MostHatedFood.Name != "Burger" {
		t.Errorf("MostHatedFood = %+v, want Burger (Salad has no feedback and must not place)", got.MostHatedFood)
	}

	if len(got.FoodRatings) != 3 {
		t.Fatalf("len(FoodRatings) = %d, want 3 (unrated dishes still listed)", len(got.FoodRatings))
	}
	ratings := make(map[string]FoodRating)
	for _, fr := range got.FoodRatings {
		ratings[fr.Name] = fr
	}
	if ratings["Pasta"].AverageRating != 4.5 {
		t.Errorf("Pasta average = %v, want 4.5", ratings["Pasta"].AverageRating)
	}
	if ratings["Salad"].AverageRating != 0 || ratings["Salad"].FeedbackCount != 0 {
		t.Errorf("Salad = %+v, want zero average and count", ratings["Salad"])
	}

	if got.MostOrderedFood == nil || got.MostOrderedFood.Name != "Pasta" {
		t.Errorf("MostOrderedFood = %+v, want Pasta", got.MostOrderedFood)
	}
	if got.LeastOrderedFood == nil || got.LeastOrderedFood.Name != "Burger" {
		t.Errorf("LeastOrderedFood = %+v, want Burger", got.LeastOrderedFood)
	}

	perf := make(map[string]ChefRating)
	for _, cr := range got.ChefPerformance {
		perf[cr.ChefName] = cr
	}
	if perf["Chef A"].AverageRating != 4.5 || perf["Chef A"].FeedbackCount != 2 {
		t.Errorf("Chef A = %+v, want avg 4.5 over 2 ratings", perf["Chef A"])
	}
	if perf["Chef B"].AverageRating != 2 || perf["Chef B"].FeedbackCount != 1 {
		t.Errorf("Chef B = %+v, want avg 2 over 1 rating", perf["Chef B"])
	}
}

// Menu items without an assigned chef must not panic or pollute the chef
// rollup.
func TestBuildAdminAnalyticsUnassignedChef(t *testing.T) {
	now := at(2024, time.June, 10)
	dish := oid(1)

	menuItems := []models.MenuItem{{ID: dish, Name: "Pasta"}} // zero ChefID
	feedback := []models.Feedback{
		{CreatedAt: at(2024, time.June, 10), Items: []models.FeedbackItem{{MenuItemID: dish, Rating: 5}}},
	}

	got := BuildAdminAnalytics(now, 7, feedback, nil, menuItems, nil)
	if len(got.ChefPerformance) != 0 {
		t.Errorf("ChefPerformance = %+v, want empty", got.ChefPerformance)
	}
}
