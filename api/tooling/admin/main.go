// Command admin provides operational tooling: signing key generation, user
// creation, and capability grants.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus/stores/permdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus/stores/usercache"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus/stores/userdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"dharmahome"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := cobra.Command{
		Use:           "admin",
		Short:         "Operational tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			godotenv.Load()
		},
	}

	root.AddCommand(keygenCmd(), userAddCmd(), grantCmd(), revokeCmd())

	return &root
}

func keygenCmd() *cobra.Command {
	var folder string

	cmd := cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA signing key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			return keygen(folder)
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "zarf/keys", "folder to write the private key to")

	return &cmd
}

func keygen(folder string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("creating folder: %w", err)
	}

	kid := uuid.NewString()

	file, err := os.Create(filepath.Join(folder, kid+".pem"))
	if err != nil {
		return fmt.Errorf("creating key file: %w", err)
	}
	defer file.Close()

	block := pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}

	if err := pem.Encode(file, &block); err != nil {
		return fmt.Errorf("encoding key: %w", err)
	}

	fmt.Println("kid:", kid)
	return nil
}

func userAddCmd() *cobra.Command {
	var (
		orgIDStr string
		nameStr  string
		emailStr string
		phoneStr string
		passStr  string
		roleStrs []string
	)

	cmd := cobra.Command{
		Use:   "useradd",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			userBus := userbus.NewCore(usercache.NewStore(log, userdb.NewStore(log, db), time.Minute))

			nu := userbus.NewUser{}

			if orgIDStr != "" {
				orgID, err := uuid.Parse(orgIDStr)
				if err != nil {
					return fmt.Errorf("invalid org id: %w", err)
				}
				nu.OrgID = orgID
			}

			nu.Name, err = name.Parse(nameStr)
			if err != nil {
				return fmt.Errorf("invalid name: %w", err)
			}

			addr, err := mail.ParseAddress(emailStr)
			if err != nil {
				return fmt.Errorf("invalid email: %w", err)
			}
			nu.Email = *addr

			nu.Phone, err = phone.ParseNull(phoneStr)
			if err != nil {
				return fmt.Errorf("invalid phone: %w", err)
			}

			nu.Password, err = password.Parse(passStr)
			if err != nil {
				return fmt.Errorf("invalid password: %w", err)
			}

			nu.Roles, err = role.ParseMany(roleStrs)
			if err != nil {
				return fmt.Errorf("invalid roles: %w", err)
			}

			usr, err := userBus.Create(cmd.Context(), nu)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Println("user id:", usr.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgIDStr, "org", "", "organization id (empty for super admins)")
	cmd.Flags().StringVar(&nameStr, "name", "", "full name")
	cmd.Flags().StringVar(&emailStr, "email", "", "email address")
	cmd.Flags().StringVar(&phoneStr, "phone", "", "phone number")
	cmd.Flags().StringVar(&passStr, "password", "", "password")
	cmd.Flags().StringSliceVar(&roleStrs, "roles", []string{"USER"}, "roles")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return &cmd
}

func grantCmd() *cobra.Command {
	var (
		userIDStr string
		permStr   string
		byStr     string
	)

	cmd := cobra.Command{
		Use:   "grant",
		Short: "Grant a capability to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeGrant(cmd.Context(), userIDStr, permStr, byStr, true)
		},
	}

	cmd.Flags().StringVar(&userIDStr, "user", "", "user id")
	cmd.Flags().StringVar(&permStr, "permission", "", "permission name")
	cmd.Flags().StringVar(&byStr, "by", "", "granting user id")

	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("permission")
	cmd.MarkFlagRequired("by")

	return &cmd
}

func revokeCmd() *cobra.Command {
	var (
		userIDStr string
		permStr   string
	)

	cmd := cobra.Command{
		Use:   "revoke",
		Short: "Revoke a capability from a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeGrant(cmd.Context(), userIDStr, permStr, "", false)
		},
	}

	cmd.Flags().StringVar(&userIDStr, "user", "", "user id")
	cmd.Flags().StringVar(&permStr, "permission", "", "permission name")

	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("permission")

	return &cmd
}

func changeGrant(ctx context.Context, userIDStr string, permStr string, byStr string, grant bool) error {
	db, log, err := open()
	if err != nil {
		return err
	}
	defer db.Close()

	permBus := permbus.NewCore(log, permdb.NewStore(log, db))

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	perm, err := permission.Parse(permStr)
	if err != nil {
		return fmt.Errorf("invalid permission: %w", err)
	}

	if !grant {
		if err := permBus.Revoke(ctx, userID, perm); err != nil {
			return fmt.Errorf("revoke: %w", err)
		}
		fmt.Println("revoked", perm, "from", userID)
		return nil
	}

	grantedBy, err := uuid.Parse(byStr)
	if err != nil {
		return fmt.Errorf("invalid granting user id: %w", err)
	}

	if _, err := permBus.Grant(ctx, userID, perm, grantedBy); err != nil {
		return fmt.Errorf("grant: %w", err)
	}

	fmt.Println("granted", perm, "to", userID)
	return nil
}

func open() (*sqlx.DB, *logger.Logger, error) {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, nil, fmt.Errorf("processing config: %w", err)
	}

	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN", nil)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to db: %w", err)
	}

	return db, log, nil
}
