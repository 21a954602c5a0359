package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/spf13/cobra"

	"github.com/ssargent/gobpt/pkg/api"
	"github.com/ssargent/gobpt/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gobpt HTTP API",
	Long: `Start the gobpt HTTP API, serving a three-route key/value
surface over the index plus /metrics.

Example:
  gobpt serve --bind :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := indexFromContext(cmd)
		if err != nil {
			return err
		}

		bind, _ := cmd.Flags().GetString("bind")
		if bind == "" {
			bind = ":8080"
		}
		apiKey, _ := cmd.Flags().GetString("api-key")
		dsn, _ := cmd.Flags().GetString("sentry-dsn")

		router := api.NewRouter(idx, api.ServerConfig{Bind: bind, APIKey: apiKey})

		var handler http.Handler = router
		if dsn != "" {
			if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
				return fmt.Errorf("failed to init sentry: %w", err)
			}
			defer sentry.Flush(2 * time.Second)
			sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})
			handler = sentryHandler.Handle(router)
		}

		log.Printf("gobpt serving on %s", bind)
		return http.ListenAndServe(bind, handler)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("api-key", "", "Require this value in the X-API-Key header (unset disables auth)")
	serveCmd.Flags().String("sentry-dsn", "", "Sentry DSN for recovered-panic reporting (unset disables)")
}
