package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("⚠️  WARNING: This will DELETE ALL DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all users")
	fmt.Println("  - Delete all production, damage and dispatch records")
	fmt.Println("  - Delete all cash and material entries")
	fmt.Println("  - Delete chat history and notifications")
	fmt.Println("  - Reset all ID sequences")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	// Load environment variables
	godotenv.Load()

	// Database connection
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "poultry_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("🔄 Resetting database...")

	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	// Disable foreign key checks
	_, err = tx.Exec(ctx, "SET session_replication_role = 'replica'")
	if err != nil {
		log.Fatalf("Failed to disable foreign key checks: %v\n", err)
	}

	tables := []string{
		"dispatch_edit_logs",
		"dispatch_trips",
		"dispatch_batches",
		"damage_entries",
		"production_entries",
		"cash_entries",
		"material_entries",
		"chat_messages",
		"notifications",
		"users",
		"system_settings",
		"catalog_items",
	}

	for _, table := range tables {
		_, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  ✓ Cleared %s\n", table)
	}

	// Re-enable foreign key checks
	_, err = tx.Exec(ctx, "SET session_replication_role = 'origin'")
	if err != nil {
		log.Fatalf("Failed to enable foreign key checks: %v\n", err)
	}

	sequences := []string{
		"users_id_seq",
		"production_entries_id_seq",
		"damage_entries_id_seq",
		"dispatch_batches_id_seq",
		"dispatch_trips_id_seq",
		"dispatch_edit_logs_id_seq",
		"cash_entries_id_seq",
		"material_entries_id_seq",
		"chat_messages_id_seq",
		"notifications_id_seq",
		"system_settings_id_seq",
		"catalog_items_id_seq",
	}

	for _, seq := range sequences {
		_, err = tx.Exec(ctx, fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq))
		if err != nil {
			log.Printf("Warning: Failed to reset sequence %s: %v\n", seq, err)
		}
	}
	fmt.Println("  ✓ Reset ID sequences")

	// Re-seed defaults
	settings := []struct {
		key   string
		value string
		desc  string
	}{
		{"low_stock_threshold", "30000", "Egg count below which the low stock alert fires"},
		{"default_branch", "Delhi", "Branch preselected on entry forms"},
	}

	for _, s := range settings {
		_, err = tx.Exec(ctx, `
			INSERT INTO system_settings (setting_key, setting_value, description, updated_at)
			VALUES ($1, $2, $3, NOW())`,
			s.key, s.value, s.desc,
		)
		if err != nil {
			log.Printf("Warning: Failed to create setting %s: %v\n", s.key, err)
		}
	}

	branches := []string{"Delhi", "Lucknow"}
	for _, b := range branches {
		_, err = tx.Exec(ctx, `INSERT INTO catalog_items (kind, name) VALUES ('branch', $1)`, b)
		if err != nil {
			log.Printf("Warning: Failed to create branch %s: %v\n", b, err)
		}
	}
	fmt.Println("  ✓ Created default settings")

	err = tx.Commit(ctx)
	if err != nil {
		log.Fatalf("Failed to commit transaction: %v\n", err)
	}

	fmt.Println()
	fmt.Println("✅ Database reset successful!")
	fmt.Println()
	fmt.Println("Sign up the first account to become admin.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
