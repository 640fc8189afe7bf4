package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/repository"
)

// Standalone admin seeding, kept out of the API binary on purpose. Against
// the in-memory store the account only exists for the life of this process,
// so the real use is verifying credentials hash and store wiring before
// setting ADMIN_USERNAME/ADMIN_PASSWORD on the API.
func main() {
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		logrus.Fatal("username and password are required (flags or ADMIN_USERNAME/ADMIN_PASSWORD)")
	}
	if len(*password) < 8 {
		logrus.Fatal("password must be at least 8 characters")
	}

	store := repository.NewMemStore()

	admin, err := store.CreateAdmin(context.Background(), *username, *password)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create admin user")
	}

	logrus.WithFields(logrus.Fields{
		"id":       admin.ID,
		"username": admin.Username,
	}).Info("admin user created")
}
