//go:build ignore

// This script prints a JWT secret, an API key and the bcrypt hash of a cashier PIN.
// Run with: go run scripts/generate_keys.go <pin>
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 || len(os.Args[1]) < 4 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/generate_keys.go <pin of at least 4 characters>")
		os.Exit(2)
	}

	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}
	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fail("PIN hash", err)
	}

	fmt.Println("# Cashier login")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("CASHIER_PIN_HASH='%s'\n", pinHash)
	fmt.Println()
	fmt.Println("# API key authentication (used when CASHIER_PIN_HASH is unset)")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", apiKey)
}
