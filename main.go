package main

import (
	"log"
	"net"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/pocketbase/pocketbase/tools/hook"

	"github.com/geoffjay/modelbase/internal/cmd"
	"github.com/geoffjay/modelbase/internal/config"
	"github.com/geoffjay/modelbase/internal/webhook"

	_ "github.com/geoffjay/modelbase/internal/migrate/steps"
	_ "github.com/geoffjay/modelbase/migrations"
)

func main() {
	app := pocketbase.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{})

	app.RootCmd.AddCommand(cmd.NewMigrateSchemaCmd(app))

	webhook.New(app, cfg).Bind()

	// IP allowlist middleware
	app.OnServe().Bind(&hook.Handler[*core.ServeEvent]{
		Func: func(e *core.ServeEvent) error {
			e.Router.BindFunc(func(re *core.RequestEvent) error {
				if !isAllowedIP(re, cfg.AllowedHomeIP) {
					log.Printf("Access denied from IP: %s, Path: %s", re.RealIP(), re.Request.URL.Path)
					return re.ForbiddenError("Access denied from your IP address", nil)
				}
				return re.Next()
			})
			return e.Next()
		},
		Priority: 1, // Execute early in the chain
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func isAllowedIP(e *core.RequestEvent, allowed string) bool {
	// RealIP() respects proxy headers
	clientIP := e.RealIP()

	if isPrivateNetwork(clientIP) {
		return true
	}

	if allowed == "" {
		// Nothing configured, only private network traffic gets through
		return false
	}

	// Support CIDR notation for the allowed address
	if strings.Contains(allowed, "/") {
		_, allowedNet, err := net.ParseCIDR(allowed)
		if err != nil {
			log.Printf("Invalid ALLOWED_HOME_IP CIDR: %v", err)
			return false
		}
		ip := net.ParseIP(clientIP)
		return allowedNet.Contains(ip)
	}

	return clientIP == allowed
}

func isPrivateNetwork(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	privateRanges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"fc00::/7", // IPv6 ULA
	}

	for _, cidr := range privateRanges {
		_, privNet, _ := net.ParseCIDR(cidr)
		if privNet.Contains(parsedIP) {
			return true
		}
	}

	return false
}
