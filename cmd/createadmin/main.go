// Command createadmin bootstraps the first admin account interactively.
// Subsequent admins can be created through /api/auth/register.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gorm.io/gorm"

	"attendify/backend/config"
	"attendify/backend/internal/model"
	"attendify/backend/internal/repository"
	"attendify/backend/pkg/database"
	applogger "attendify/backend/pkg/logger"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	repo := repository.NewRepository(db)

	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Admin full name: ")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email address: ")
	if err != nil {
		return err
	}

	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimSpace(string(pw))

	if name == "" || email == "" || password == "" {
		return errors.New("all fields are required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if existing, err := repo.User.GetByEmail(ctx, email); err == nil {
		return fmt.Errorf("account with email %q already exists (name: %s, role: %s)",
			email, existing.Name, existing.Role)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Role:         model.RoleAdmin,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	fmt.Printf("Admin account created: %s <%s>\n", user.Name, user.Email)
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
