// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lumina/internal/api"
	"lumina/internal/api/handlers"
	"lumina/internal/config"
	"lumina/internal/initconfig"
	"lumina/internal/logging"
	"lumina/internal/notify"
	"lumina/internal/services"
	"lumina/internal/services/auth"
	"lumina/internal/store"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	port          int
	logLevel      string
	adminPassword string
	jwtSecret     string
	storeDSN      string
	initConfig    string
	seedDemo      bool
	notifyEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Lumina Studio API",
	Long:  `A REST API for a photography studio: client management, shoot sessions, photo galleries and the public portfolio.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: LUMINA_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: LUMINA_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&storeDSN, "dsn", "", "SQLite DSN for the entity store; defaults to ':memory:'. (Env: LUMINA_STORE_DSN)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: LUMINA_PORT)")
	RootCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the 'admin' user. (Env: LUMINA_PASSWORD)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: LUMINA_JWT_SECRET)")
	RootCmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML config file for one-time initialization of clients/albums. (Env: LUMINA_INIT_CONFIG)")
	RootCmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "Seed the built-in showcase dataset on startup. (Env: LUMINA_SEED_DEMO=true)")
	RootCmd.Flags().BoolVar(&notifyEnabled, "notify-enabled", false, "Log a notification event for every completed or failed mutation. (Env: LUMINA_NOTIFY_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("LUMINA_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Defaults and validation
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("LUMINA_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LUMINA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LUMINA_NOTIFY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.NotifyEnabled = b
		}
	}
	if v := os.Getenv("LUMINA_PASSWORD"); v != "" {
		c.Auth.AdminPassword = v
	}
	if v := os.Getenv("LUMINA_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("LUMINA_STORE_DSN"); v != "" {
		c.Store.DSN = v
	}
	if v := os.Getenv("LUMINA_SEED_DEMO"); v == "true" {
		seedDemo = true
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if adminPassword != "" {
		c.Auth.AdminPassword = adminPassword
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}
	if storeDSN != "" {
		c.Store.DSN = storeDSN
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("notify-enabled") {
		c.Logging.NotifyEnabled = notifyEnabled
	}
	if initConfig == "" {
		if v := os.Getenv("LUMINA_INIT_CONFIG"); v != "" {
			initConfig = v
		}
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT Secret
	if cfg.JWTSecret == "" {
		if cfg.Auth.Secret != "" {
			logging.Log.Info("Using JWT secret loaded from config.toml.")
			cfg.JWTSecret = cfg.Auth.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.Auth.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	st, err := store.Open(cfg.Store.DSN, store.NewULIDGenerator())
	if err != nil {
		return fmt.Errorf("failed to open entity store: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(); err != nil {
		logging.Log.Errorf("Failed to migrate database: %v", err)
		return err
	}

	// Notification sink for mutation outcomes
	var notifier notify.Notifier = notify.Discard{}
	if cfg.Logging.NotifyEnabled {
		notifier = notify.LoggerNotifier{}
	}

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime)
	clientService := services.NewClientService(st, notifier)
	sessionService := services.NewSessionService(st, notifier)
	photoService := services.NewPhotoService(st, notifier)
	albumService := services.NewAlbumService(st, notifier)
	tokenService := auth.NewTokenService(cfg, st)
	galleryService := services.NewGalleryService(st, tokenService, notifier, cfg.Gallery.AccessCode)

	authMiddleware := auth.NewMiddleware(tokenService)

	if seedDemo {
		logging.Log.Info("Seeding built-in showcase dataset...")
		demo := initconfig.Demo()
		// The configured gallery code always belongs to the seeded client.
		if len(demo.Clients) > 0 {
			demo.Clients[0].AccessCode = cfg.Gallery.AccessCode
		}
		initconfig.Apply(clientService, sessionService, photoService, albumService, demo)
	}

	if initConfig != "" {
		logging.Log.Infof("Found init_config, running initialization from: %s", initConfig)
		initconfig.Run(clientService, sessionService, photoService, albumService, initConfig)
	}

	h := handlers.NewHandlers(
		infoService,
		clientService,
		sessionService,
		photoService,
		albumService,
		galleryService,
		tokenService,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (store: %s)", serverAddr, cfg.Store.DSN)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
