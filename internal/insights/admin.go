package insights

import (
	"sort"
	"time"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// dayFormat is the ISO calendar-day bucket key, UTC-normalized.
const dayFormat = "2006-01-02"

// TrendPoint is one day's rollup inside the admin date window.
type TrendPoint struct {
	Date          string  `json:"date"`
	AverageRating float64 `json:"averageRating"`
	OrderCount    int     `json:"orderCount"`
}

// FoodRating is a per-dish rating rollup within the window.
type FoodRating struct {
	MenuItemID    bson.ObjectID `json:"menuItemId"`
	Name          string        `json:"name"`
	AverageRating float64       `json:"averageRating"`
	FeedbackCount int           `json:"feedbackCount"`
}

// FoodOrders is a per-dish order-count rollup within the window.
type FoodOrders struct {
	MenuItemID bson.ObjectID `json:"menuItemId"`
	Name       string        `json:"name"`
	OrderCount int           `json:"orderCount"`
}

// ChefRating is a per-chef rating rollup over the dishes they own.
type ChefRating struct {
	ChefID        bson.ObjectID `json:"chefId"`
	ChefName      string        `json:"chefName"`
	AverageRating float64       `json:"averageRating"`
	FeedbackCount int           `json:"feedbackCount"`
}

// AdminAnalytics is the restaurant-wide dashboard payload.
type AdminAnalytics struct {
	TotalReviews     int          `json:"totalReviews"`
	OverallRating    float64      `json:"overallRating"`
	ActiveChefs      int          `json:"activeChefs"`
	TotalMenuItems   int          `json:"totalMenuItems"`
	ReviewsTrend     float64      `json:"reviewsTrend"`
	RatingTrend      float64      `json:"ratingTrend"`
	MostLikedFood    *FoodRating  `json:"mostLikedFood,omitempty"`
	MostHatedFood    *FoodRating  `json:"mostHatedFood,omitempty"`
	FoodRatings      []FoodRating `json:"foodRatings"`
	MostOrderedFood  *FoodOrders  `json:"mostOrderedFood,omitempty"`
	LeastOrderedFood *FoodOrders  `json:"leastOrderedFood,omitempty"`
	FoodOrders       []FoodOrders `json:"foodOrders"`
	ChefPerformance  []ChefRating `json:"chefPerformance"`
	Trends           []TrendPoint `json:"trends"`
}

type dayBucket struct {
	totalRating float64
	ratingCount int
	orderCount  int
}

type ratingAcc struct {
	sum   float64
	count int
}

// BuildAdminAnalytics buckets feedback and orders by calendar day over
// [now-days, now] inclusive (days+1 buckets) and computes the dashboard
// rollups. The feedback and order slices must cover at least the current
// window plus the equally long preceding window, which feeds the
// period-over-period trend percentages. Records outside either window are
// ignored.
func BuildAdminAnalytics(now time.Time, days int, feedback []models.Feedback, orders []models.Order, menuItems []models.MenuItem, chefs []models.User) AdminAnalytics {
	today := truncateDay(now)
	windowStart := today.AddDate(0, 0, -days)
	// The preceding comparison window has the same length as the current one.
	prevStart := windowStart.AddDate(0, 0, -(days + 1))

	// One zero-filled bucket per day in range, ascending.
	buckets := make(map[string]*dayBucket, days+1)
	dayKeys := make([]string, 0, days+1)
	for d := windowStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		buckets[key] = &dayBucket{}
		dayKeys = append(dayKeys, key)
	}

	chefOf := make(map[bson.ObjectID]bson.ObjectID, len(menuItems))
	nameOf := make(map[bson.ObjectID]string, len(menuItems))
	for _, item := range menuItems {
		chefOf[item.ID] = item.ChefID
		nameOf[item.ID] = item.Name
	}

	var totalRating float64
	var ratingCount, totalReviews int
	var prevRating float64
	var prevRatingCount, prevReviews int
	foodRatings := make(map[bson.ObjectID]*ratingAcc)
	chefRatings := make(map[bson.ObjectID]*ratingAcc)

	for _, doc := range feedback {
		key := doc.CreatedAt.UTC().Format(dayFormat)
		bucket, inWindow := buckets[key]

		if !inWindow {
			if inRange(doc.CreatedAt, prevStart, windowStart) {
				prevReviews++
				for _, item := range doc.Items {
					prevRating += float64(item.Rating)
					prevRatingCount++
				}
			}
			continue
		}

		totalReviews++
		for _, item := range doc.Items {
			bucket.totalRating += float64(item.Rating)
			bucket.ratingCount++
			totalRating += float64(item.Rating)
			ratingCount++

			acc := foodRatings[item.MenuItemID]
			if acc == nil {
				acc = &ratingAcc{}
				foodRatings[item.MenuItemID] = acc
			}
			acc.sum += float64(item.Rating)
			acc.count++

			if chefID, ok := chefOf[item.MenuItemID]; ok && !chefID.IsZero() {
				cacc := chefRatings[chefID]
				if cacc == nil {
					cacc = &ratingAcc{}
					chefRatings[chefID] = cacc
				}
				cacc.sum += float64(item.Rating)
				cacc.count++
			}
		}
	}

	foodOrders := make(map[bson.ObjectID]int)
	for _, o := range orders {
		key := o.CreatedAt.UTC().Format(dayFormat)
		bucket, inWindow := buckets[key]
		if !inWindow {
			continue
		}
		bucket.orderCount++
		for _, item := range o.Items {
			foodOrders[item.MenuItemID]++
		}
	}

	trends := make([]TrendPoint, 0, len(dayKeys))
	for _, key := range dayKeys {
		b := buckets[key]
		trends = append(trends, TrendPoint{
			Date:          key,
			AverageRating: sentiment.Round2(sentiment.SafeRatio(b.totalRating, float64(b.ratingCount))),
			OrderCount:    b.orderCount,
		})
	}

	overall := sentiment.SafeRatio(totalRating, float64(ratingCount))
	prevOverall := sentiment.SafeRatio(prevRating, float64(prevRatingCount))

	analytics := AdminAnalytics{
		TotalReviews:    totalReviews,
		OverallRating:   sentiment.Round2(overall),
		ActiveChefs:     len(chefs),
		TotalMenuItems:  len(menuItems),
		ReviewsTrend:    trendPercent(float64(totalReviews), float64(prevReviews)),
		RatingTrend:     trendPercent(overall, prevOverall),
		FoodRatings:     []FoodRating{},
		FoodOrders:      []FoodOrders{},
		ChefPerformance: []ChefRating{},
		Trends:          trends,
	}

	// Dishes and chefs with no feedback in the window still report a zero
	// average rather than disappearing from the dashboard.
	for _, item := range menuItems {
		acc := foodRatings[item.ID]
		fr := FoodRating{MenuItemID: item.ID, Name: item.Name}
		if acc != nil {
			fr.AverageRating = sentiment.Round2(sentiment.SafeRatio(acc.sum, float64(acc.count)))
			fr.FeedbackCount = acc.count
		}
		analytics.FoodRatings = append(analytics.FoodRatings, fr)

		fo := FoodOrders{MenuItemID: item.ID, Name: item.Name, OrderCount: foodOrders[item.ID]}
		analytics.FoodOrders = append(analytics.FoodOrders, fo)
	}
	sort.SliceStable(analytics.FoodRatings, func(i, j int) bool {
		return analytics.FoodRatings[i].AverageRating > analytics.FoodRatings[j].AverageRating
	})
	sort.SliceStable(analytics.FoodOrders, func(i, j int) bool {
		return analytics.FoodOrders[i].OrderCount > analytics.FoodOrders[j].OrderCount
	})

	for i := range analytics.FoodRatings {
		fr := analytics.FoodRatings[i]
		if fr.FeedbackCount == 0 {
			continue
		}
		if analytics.MostLikedFood == nil {
			liked := fr
			analytics.MostLikedFood = &liked
		}
		hated := fr
		analytics.MostHatedFood = &hated
	}
	for i := range analytics.FoodOrders {
		fo := analytics.FoodOrders[i]
		if fo.OrderCount == 0 {
			continue
		}
		if analytics.MostOrderedFood == nil {
			most := fo
			analytics.MostOrderedFood = &most
		}
		least := fo
		analytics.LeastOrderedFood = &least
	}

	for _, chef := range chefs {
		cr := ChefRating{ChefID: chef.ID, ChefName: chef.Name}
		if acc := chefRatings[chef.ID]; acc != nil {
			cr.AverageRating = sentiment.Round2(sentiment.SafeRatio(acc.sum, float64(acc.count)))
			cr.FeedbackCount = acc.count
		}
		analytics.ChefPerformance = append(analytics.ChefPerformance, cr)
	}
	sort.SliceStable(analytics.ChefPerformance, func(i, j int) bool {
		return analytics.ChefPerformance[i].AverageRating > analytics.ChefPerformance[j].AverageRating
	})

	return analytics
}

// trendPercent is the period-over-period change, 0 when there is no
// previous signal to compare against.
func trendPercent(current, previous float64) float64 {
	return sentiment.Round2(sentiment.SafeRatio(current-previous, previous) * 100)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inRange reports start <= t < end, compared on UTC calendar days.
func inRange(t, start, end time.Time) bool {
	day := truncateDay(t)
	return !day.Before(start) && day.Before(end)
}
