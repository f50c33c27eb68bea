// Command issuetoken prints a bearer token whose subject is the given identity.
// The server trusts the subject as the caller of every ledger operation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"fleet-ledger/internal/pkg/jwt"
)

func main() {
	identity := flag.String("identity", "", "caller identity, e.g. alice.fleet")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	id, err := fleet.ParseIdentity(*identity)
	if err != nil {
		logger.Error("invalid identity", "identity", *identity, "error", err)
		os.Exit(2)
	}

	var jwtCfg config.JWTConfig
	if err := envconfig.Process("", &jwtCfg); err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(jwtCfg.Secret, jwtCfg.Duration).GenerateToken(id)
	if err != nil {
		logger.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
