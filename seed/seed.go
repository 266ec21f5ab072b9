// Package seed populates the database with demo data and runs a full
// leaderboard materialization pass over it.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/octofit/api-go/leaderboard"
	"github.com/octofit/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var activityTypes = []models.ActivityType{
	{Name: "Running", Description: "High-intensity cardiovascular exercise"},
	{Name: "Cycling", Description: "Biking activity for fitness"},
	{Name: "Swimming", Description: "Water-based exercise"},
	{Name: "Walking", Description: "Low-impact cardio exercise"},
	{Name: "Gym Workout", Description: "Strength and resistance training"},
	{Name: "Yoga", Description: "Flexibility and mindfulness practice"},
	{Name: "Basketball", Description: "Team sport activity"},
	{Name: "Soccer", Description: "Football team sport"},
}

// Activity types that carry a distance.
var distanceTypes = map[string]bool{
	"Running": true,
	"Cycling": true,
	"Walking": true,
}

var demoUsers = []models.User{
	{Username: "alice", Email: "alice@octofit.com", FirstName: "Alice", LastName: "Johnson"},
	{Username: "bob", Email: "bob@octofit.com", FirstName: "Bob", LastName: "Smith"},
	{Username: "carol", Email: "carol@octofit.com", FirstName: "Carol", LastName: "Williams"},
	{Username: "david", Email: "david@octofit.com", FirstName: "David", LastName: "Brown"},
	{Username: "emma", Email: "emma@octofit.com", FirstName: "Emma", LastName: "Davis"},
}

// Run seeds demo users, teams and activities, then refreshes every
// team's leaderboards through the materialization pipeline. Reruns are
// safe: existing rows are reused, not duplicated.
func Run(db *gorm.DB, materializer *leaderboard.Materializer) error {
	log.Println("Starting database population...")

	types := make([]models.ActivityType, len(activityTypes))
	for i, at := range activityTypes {
		t := at
		err := db.Where("name = ?", t.Name).
			Attrs(models.ActivityType{Description: t.Description}).
			FirstOrCreate(&t).Error
		if err != nil {
			return fmt.Errorf("seeding activity type %s: %w", at.Name, err)
		}
		types[i] = t
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]models.User, len(demoUsers))
	for i, du := range demoUsers {
		u := models.User{Username: du.Username}
		err := db.Where("username = ?", du.Username).
			Attrs(models.User{
				Email:     du.Email,
				Password:  string(hashed),
				FirstName: du.FirstName,
				LastName:  du.LastName,
			}).
			FirstOrCreate(&u).Error
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", du.Username, err)
		}
		users[i] = u

		profile := models.Profile{UserID: u.ID}
		err = db.Where("user_id = ?", u.ID).
			Attrs(models.Profile{
				Bio:          fmt.Sprintf("%s is a fitness enthusiast.", du.FirstName),
				FitnessGoals: []string{"stay_active"},
			}).
			FirstOrCreate(&profile).Error
		if err != nil {
			return fmt.Errorf("seeding profile for %s: %w", du.Username, err)
		}
	}

	teamsData := []models.Team{
		{Name: "Team Fitness Warriors", Description: "A team of dedicated fitness enthusiasts", CreatedByID: users[0].ID},
		{Name: "Sunday Runners", Description: "Weekly running group for beginners", CreatedByID: users[1].ID},
		{Name: "Gym Crew", Description: "Strength training enthusiasts", CreatedByID: users[2].ID},
	}

	teams := make([]models.Team, len(teamsData))
	for i, td := range teamsData {
		t := models.Team{Name: td.Name}
		err := db.Where("name = ?", td.Name).
			Attrs(models.Team{Description: td.Description, CreatedByID: td.CreatedByID}).
			FirstOrCreate(&t).Error
		if err != nil {
			return fmt.Errorf("seeding team %s: %w", td.Name, err)
		}
		if err := db.Model(&t).Association("Members").Replace(users); err != nil {
			return fmt.Errorf("seeding members for %s: %w", td.Name, err)
		}
		teams[i] = t
	}

	if err := seedActivities(db, users, types); err != nil {
		return err
	}

	for _, t := range teams {
		if err := materializer.RefreshAll(t.ID); err != nil {
			return fmt.Errorf("materializing leaderboards for %s: %w", t.Name, err)
		}
	}

	log.Println("Database population completed")
	return nil
}

func seedActivities(db *gorm.DB, users []models.User, types []models.ActivityType) error {
	var count int64
	if err := db.Model(&models.Activity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Skipping activity seed, %d activities already present", count)
		return nil
	}

	now := time.Now()
	for i := 0; i < 50; i++ {
		user := users[rand.Intn(len(users))]
		activityType := types[rand.Intn(len(types))]

		calories := 200 + rand.Intn(601)
		activity := models.Activity{
			UserID:          user.ID,
			ActivityTypeID:  activityType.ID,
			DurationMinutes: 30 + rand.Intn(91),
			CaloriesBurned:  &calories,
			Notes:           fmt.Sprintf("Great %s session today!", activityType.Name),
			ActivityDate:    now.AddDate(0, 0, -rand.Intn(31)),
		}
		if distanceTypes[activityType.Name] {
			distance := 2 + rand.Float64()*13
			activity.DistanceKm = &distance
		}

		if err := db.Create(&activity).Error; err != nil {
			return fmt.Errorf("seeding activity: %w", err)
		}
	}

	log.Println("Created 50 activity records")
	return nil
}
