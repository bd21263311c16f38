package db

import (
	"log"
	"os"
	"soclone/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=soclone port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	DB, err = Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedTags()
}

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey so
	// handlers can show "already exists" instead of a bare 500.
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate runs AutoMigrate plus the uniqueness indexes AutoMigrate cannot
// express. The upserts in services rely on these being enforced by Postgres
// itself; application code never does check-then-insert.
func Migrate(g *gorm.DB) error {
	err := g.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.Answer{},
		&models.QuestionVote{},
		&models.AnswerVote{},
		&models.QuestionViewIP{},
		&models.QuestionView{},
	)
	if err != nil {
		return err
	}

	// user_id is NULL for anonymous raw events; NULLS NOT DISTINCT (PG 15+)
	// makes two anonymous events from the same address conflict as required.
	// The unique-view table instead needs partial indexes: user rows and ip
	// rows are keyed independently, and NULLs on the other column must stay
	// distinct there.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_view_ip_identity
		 ON question_view_ips (question_id, user_id, ip_address) NULLS NOT DISTINCT`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_view_user
		 ON question_views (question_id, user_id) WHERE user_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_view_ip
		 ON question_views (question_id, ip_id) WHERE ip_id IS NOT NULL`,
	}
	for _, stmt := range stmts {
		if err := g.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTags() {
	var count int64
	DB.Model(&models.Tag{}).Count(&count)
	if count > 0 {
		log.Println("Tags already seeded, skipping")
		return
	}

	tags := []models.Tag{
		{Name: "go"},
		{Name: "postgresql"},
		{Name: "web"},
		{Name: "debugging"},
	}

	for _, tag := range tags {
		if err := DB.Create(&tag).Error; err != nil {
			log.Printf("Failed to create tag %s: %v", tag.Name, err)
		}
	}
	log.Println("Initial tags created successfully")
}
