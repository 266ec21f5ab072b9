package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/octofit/api-go/config"
	"github.com/octofit/api-go/leaderboard"
	"github.com/octofit/api-go/routes"
	"github.com/octofit/api-go/seed"
	"github.com/octofit/api-go/store"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	root := &cobra.Command{
		Use:          "octofit-api",
		Short:        "Fitness tracker REST backend",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), seedCmd(), recomputeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() (*gorm.DB, config.Config) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()
	return config.InitDB(cfg), cfg
}

func newMaterializer(db *gorm.DB) *leaderboard.Materializer {
	teams := store.NewTeamStore(db)
	activities := store.NewActivityStore(db)
	boards := store.NewLeaderboardStore(db)
	return leaderboard.NewMaterializer(teams, leaderboard.NewAggregator(activities), boards)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg := connect()

			r := gin.Default()
			routes.SetupRoutes(r, db, newMaterializer(db))

			log.Printf("Starting server on port %s", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data and leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := connect()
			return seed.Run(db, newMaterializer(db))
		},
	}
}

func recomputeCmd() *cobra.Command {
	var teamID uint
	var timeframe string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Refresh materialized leaderboards",
		Long:  "Refresh materialized leaderboards for one team or all teams, for one timeframe or all of them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := connect()
			materializer := newMaterializer(db)

			var timeframes []leaderboard.Timeframe
			if timeframe != "" {
				tf, err := leaderboard.ParseTimeframe(timeframe)
				if err != nil {
					return err
				}
				timeframes = []leaderboard.Timeframe{tf}
			} else {
				timeframes = leaderboard.Timeframes
			}

			var teamIDs []uint
			if teamID != 0 {
				teamIDs = []uint{teamID}
			} else {
				teams, err := store.NewTeamStore(db).All()
				if err != nil {
					return err
				}
				for _, t := range teams {
					teamIDs = append(teamIDs, t.ID)
				}
			}

			for _, id := range teamIDs {
				for _, tf := range timeframes {
					if err := materializer.Refresh(id, tf); err != nil {
						return fmt.Errorf("refreshing team %d %s leaderboard: %w", id, tf, err)
					}
					log.Printf("Refreshed team %d %s leaderboard", id, tf)
				}
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&teamID, "team", 0, "refresh a single team (default: all teams)")
	cmd.Flags().StringVar(&timeframe, "timeframe", "", "refresh a single timeframe: daily, weekly, monthly or all_time (default: all)")
	return cmd
}
