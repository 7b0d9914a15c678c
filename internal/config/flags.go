package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a                       HTTP address host:port
//	-grpc-address            gRPC health address host:port
//	-d                       database DSN
//	-dialect                 postgres | sqlite
//	-engine                  sql | gorm
//	-redis-address           redis host:port
//	-cache-ttl               cache entry lifetime
//	-c / -config             JSON config file
//	-token-issuer            "iss" claim
//	-access-token-duration   e.g. 8h
//	-refresh-token-duration  e.g. 10m
//	-private-key             RSA private key PEM path
//	-public-key              RSA public key PEM path
//	-hash-cost               bcrypt cost
//	-request-timeout         e.g. 15s
//	-log-level               zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("customer-service", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Dialect, "dialect", "", "Database dialect (postgres, sqlite)")
	fs.StringVar(&cfg.Storage.DB.Engine, "engine", "", "Repository engine (sql, gorm)")
	fs.StringVar(&cfg.Storage.Cache.Address, "redis-address", "", "Redis address host:port")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "Cache entry TTL (e.g., 5m)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.AccessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 8h)")
	fs.DurationVar(&cfg.App.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 10m)")
	fs.StringVar(&cfg.App.PrivateKeyPath, "private-key", "", "RSA private key path")
	fs.StringVar(&cfg.App.PublicKeyPath, "public-key", "", "RSA public key path")
	fs.IntVar(&cfg.App.PasswordHashCost, "hash-cost", 0, "bcrypt cost")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty, or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
