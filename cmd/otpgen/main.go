package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/textvault/textvault/internal/otp"
)

// otpgen prints a token the running service will accept right now, for
// issuing API keys from scripts or a shell.
func main() {
	_ = godotenv.Load(".env")

	secret := os.Getenv("OTP_SECRET")
	if secret == "" {
		log.Fatal("environment variable OTP_SECRET is required")
	}

	token, err := otp.GenerateAt(secret, time.Now())
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	// remaining validity of the step the token belongs to
	remaining := otp.Period - time.Now().Unix()%otp.Period
	fmt.Printf("%s\t(valid ~%ds)\n", token, remaining)
}
