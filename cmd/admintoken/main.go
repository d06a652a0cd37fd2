package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hellenika/api/internal/auth"
	"github.com/hellenika/api/internal/config"
)

func main() {
	subject := flag.String("subject", "admin", "Token subject, usually an operator email")
	ttl := flag.Duration("ttl", auth.AdminTokenExpiry, "Token lifetime")
	flag.Parse()

	cfg := config.Load()
	if cfg.AdminJWTSecret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.GenerateAdminToken(*subject, cfg.AdminJWTSecret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(*ttl).Format(time.RFC3339))
}
