// Package seed populates the database with demo accounts, follows, posts,
// likes and comments. Intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"lumeo/internal/idgen"
	"lumeo/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder builds demo data on top of a Gorm DB. All denormalized counters
// (followers, following, likes, comments) are set to match the rows actually
// inserted, so seeded data obeys the same counter discipline as live traffic.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run populates the database according to opts.
func (s *Seeder) Run(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	if err := s.createFollowGraph(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Println("✓ follow graph created")

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}
	log.Println("✓ likes and comments created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, follows, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a few fixed accounts so the demo login works after a clean.
	if count >= 3 {
		baseUsers := []string{"ana", "ben", "test"}
		for _, u := range baseUsers {
			user := models.User{
				Name:     strings.ToUpper(u[:1]) + u[1:],
				Email:    fmt.Sprintf("%s@example.com", u),
				Password: string(hashedPassword),
				Bio:      "One of the OGs.",
				ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", u),
			}
			if err := s.db.Create(&user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@example.com", strings.ToLower(gofakeit.Username()), i)

		user := models.User{
			Name:     name,
			Email:    email,
			Password: string(hashedPassword),
			Bio:      gofakeit.Sentence(10),
			ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}

		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", email, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createFollowGraph gives every user a handful of follows, then updates the
// denormalized counters in one pass from the inserted edges.
func (s *Seeder) createFollowGraph(users []models.User) error {
	if len(users) < 2 {
		return nil
	}

	followers := make(map[uint]int)
	following := make(map[uint]int)

	for _, u := range users {
		seen := map[uint]bool{u.ID: true}
		edges := s.r.Intn(len(users)/2 + 1)
		for j := 0; j < edges; j++ {
			target := users[s.r.Intn(len(users))]
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true

			follow := models.Follow{FollowerID: u.ID, FollowingID: target.ID}
			if err := s.db.Create(&follow).Error; err != nil {
				return err
			}
			following[u.ID]++
			followers[target.ID]++
		}
	}

	for _, u := range users {
		err := s.db.Model(&models.User{}).Where("id = ?", u.ID).
			Updates(map[string]interface{}{
				"followers_count": followers[u.ID],
				"following_count": following[u.ID],
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createPosts(users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	maxDays := 90

	for i := 0; i < count; i++ {
		user := users[s.r.Intn(len(users))]

		post := models.Post{
			ID:       idgen.NewID(),
			Caption:  gofakeit.Sentence(s.r.Intn(12) + 3),
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			UserID:   user.ID,
		}

		// realistic created_at spread
		daysBack := s.r.Intn(maxDays)
		hoursBack := s.r.Intn(24)
		post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

		if err := s.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	return posts, nil
}

// createEngagement sprinkles likes and comments over the seeded posts. The
// like set per post is deduplicated and the post counters are set from the
// rows actually written.
func (s *Seeder) createEngagement(users []models.User, posts []models.Post) error {
	for i := range posts {
		post := &posts[i]

		likers := map[uint]bool{}
		likeTarget := s.r.Intn(len(users) + 1)
		for j := 0; j < likeTarget; j++ {
			user := users[s.r.Intn(len(users))]
			if likers[user.ID] {
				continue
			}
			likers[user.ID] = true

			like := models.Like{UserID: user.ID, PostID: post.ID}
			if err := s.db.Create(&like).Error; err != nil {
				return err
			}
		}

		comments := s.r.Intn(6)
		for j := 0; j < comments; j++ {
			user := users[s.r.Intn(len(users))]
			comment := models.Comment{
				PostID: post.ID,
				UserID: user.ID,
				Body:   gofakeit.Sentence(s.r.Intn(10) + 2),
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return err
			}
		}

		err := s.db.Model(&models.Post{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{
				"likes_count":    len(likers),
				"comments_count": comments,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
