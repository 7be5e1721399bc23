package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	httpMW "github.com/crumbs/restaurant-service/internal/http/middleware"
	"github.com/crumbs/restaurant-service/internal/pkg/envutil"
)

// tokengen prints a bearer token for the write routes, signed with JWT_SECRET_KEY.
func main() {
	var subject string
	var ttl time.Duration
	flag.StringVar(&subject, "subject", "admin", "token subject recorded in request logs")
	flag.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := envutil.String("JWT_SECRET_KEY", "", nil)
	if secret == "" {
		fmt.Println("JWT_SECRET_KEY is not set")
		os.Exit(1)
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		fmt.Println("subject must not be empty")
		os.Exit(1)
	}
	token, err := httpMW.SignToken(secret, subject, ttl)
	if err != nil {
		fmt.Printf("sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
