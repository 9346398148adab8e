// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package client is a typed client for the object-graph backend.
//
// The backend stores relation values without checking them against the
// relation's format. This package validates every write, and provides
// get-or-create semantics for relations, object types and objects.
package client

import (
	"context"
	"fmt"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/utils/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

var logger = logging.Logger("client")

// Client is a connection to the backend, not yet logged in to an account.
type Client struct {
	config    *Config
	conn      *grpc.ClientConn
	transport transport
	version   string
	details   string
}

// New connects to the backend and checks its version against
// config.RequiredVersion. Extra dial options are applied after the
// defaults.
func New(ctx context.Context, config *Config, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(config.ServerAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	c := &Client{
		config:    config,
		conn:      conn,
		transport: transport{conn: conn},
	}

	if err := c.checkVersion(ctx); err != nil {
		_ = conn.Close()

		return nil, err
	}

	return c, nil
}

func (c *Client) checkVersion(ctx context.Context) error {
	if c.config.DialTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.config.DialTimeout)
		defer cancel()
	}

	doc, err := c.transport.call(ctx, commands.AppGetVersion, nil)
	if err != nil {
		return fmt.Errorf("failed to get backend version: %w", err)
	}

	if c.version, _, err = wire.TakeOptional(doc, commands.FieldVersion, wire.String); err != nil {
		return fmt.Errorf("failed to decode backend version: %w", err)
	}

	if c.details, _, err = wire.TakeOptional(doc, commands.FieldDetails, wire.String); err != nil {
		return fmt.Errorf("failed to decode backend version: %w", err)
	}

	logger.Debug("Connected to backend", "version", c.version, "details", c.details)

	if c.config.RequiredVersion != "" && c.version != c.config.RequiredVersion {
		return fmt.Errorf("%w: backend reports %q, %q is required", ErrUnsupportedVersion, c.version, c.config.RequiredVersion)
	}

	return nil
}

// Version returns the version and build details reported by the backend.
func (c *Client) Version() (string, string) {
	return c.version, c.details
}

// Close closes the connection. Sessions created from c stop working.
func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

// CreateAccount creates a wallet and an account in it, and logs in. It
// returns the wallet's mnemonic along with the session.
func (c *Client) CreateAccount(ctx context.Context, name string) (string, *Session, error) {
	rootPath, err := c.config.ResolvedRootPath()
	if err != nil {
		return "", nil, err
	}

	doc, err := c.transport.call(ctx, commands.WalletCreate, map[string]*structpb.Value{
		commands.FieldRootPath: wire.NewString(rootPath),
	})
	if err != nil {
		return "", nil, err
	}

	mnemonic, err := wire.Take(doc, commands.FieldMnemonic, wire.String)
	if err != nil {
		return "", nil, fmt.Errorf("backend did not respond with a mnemonic: %w", err)
	}

	token, err := c.createSession(ctx, mnemonic)
	if err != nil {
		return "", nil, err
	}

	events := startEventListener(c.conn, token)

	account, err := c.createAccount(ctx, name, rootPath)
	if err != nil {
		events.stop()

		return "", nil, err
	}

	logger.Info("Created account", "id", account.ID, "name", account.Name)

	return mnemonic, c.newSession(token, account, events), nil
}

func (c *Client) createAccount(ctx context.Context, name, rootPath string) (Account, error) {
	if err := c.setMetrics(ctx); err != nil {
		return Account{}, err
	}

	doc, err := c.transport.call(ctx, commands.AccountCreate, map[string]*structpb.Value{
		commands.FieldName:                    wire.NewString(name),
		commands.FieldStorePath:               wire.NewString(rootPath),
		commands.FieldDisableLocalNetworkSync: wire.NewBool(c.config.NetworkSync.disableLocalNetworkSync()),
		commands.FieldNetworkMode:             wire.NewNumber(c.config.NetworkSync.networkMode()),
	})
	if err != nil {
		return Account{}, err
	}

	return takeAccount(doc)
}

// Authenticate recovers the wallet of mnemonic and logs in to its account.
func (c *Client) Authenticate(ctx context.Context, mnemonic string) (*Session, error) {
	rootPath, err := c.config.ResolvedRootPath()
	if err != nil {
		return nil, err
	}

	_, err = c.transport.call(ctx, commands.WalletRecover, map[string]*structpb.Value{
		commands.FieldRootPath: wire.NewString(rootPath),
		commands.FieldMnemonic: wire.NewString(mnemonic),
	})
	if err != nil {
		return nil, err
	}

	token, err := c.createSession(ctx, mnemonic)
	if err != nil {
		return nil, err
	}

	events := startEventListener(c.conn, token)

	account, err := c.selectAccount(ctx, token, rootPath, events)
	if err != nil {
		events.stop()

		return nil, err
	}

	logger.Info("Authenticated", "id", account.ID, "name", account.Name)

	return c.newSession(token, account, events), nil
}

// selectAccount recovers the account, whose id only arrives as an
// AccountShow event, then selects it.
func (c *Client) selectAccount(ctx context.Context, token, rootPath string, events *eventListener) (Account, error) {
	if _, err := c.transport.withToken(token).call(ctx, commands.AccountRecover, nil); err != nil {
		return Account{}, err
	}

	shown, err := events.waitAccount(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("failed to wait for account: %w", err)
	}

	announced, err := decodeAccount(shown)
	if err != nil {
		return Account{}, fmt.Errorf("failed to decode announced account: %w", err)
	}

	if err := c.setMetrics(ctx); err != nil {
		return Account{}, err
	}

	doc, err := c.transport.call(ctx, commands.AccountSelect, map[string]*structpb.Value{
		commands.FieldAccountID:               wire.NewString(announced.ID),
		commands.FieldRootPath:                wire.NewString(rootPath),
		commands.FieldDisableLocalNetworkSync: wire.NewBool(c.config.NetworkSync.disableLocalNetworkSync()),
		commands.FieldNetworkMode:             wire.NewNumber(c.config.NetworkSync.networkMode()),
	})
	if err != nil {
		return Account{}, err
	}

	return takeAccount(doc)
}

func (c *Client) createSession(ctx context.Context, mnemonic string) (string, error) {
	doc, err := c.transport.call(ctx, commands.WalletCreateSession, map[string]*structpb.Value{
		commands.FieldMnemonic: wire.NewString(mnemonic),
	})
	if err != nil {
		return "", err
	}

	token, err := wire.Take(doc, commands.FieldToken, wire.String)
	if err != nil {
		return "", fmt.Errorf("backend did not respond with a session token: %w", err)
	}

	return token, nil
}

func (c *Client) setMetrics(ctx context.Context) error {
	_, err := c.transport.call(ctx, commands.MetricsSetParameters, map[string]*structpb.Value{
		commands.FieldPlatform: wire.NewString(c.config.Platform),
		commands.FieldVersion:  wire.NewString(c.config.ClientVersion),
	})

	return err
}

func (c *Client) newSession(token string, account Account, events *eventListener) *Session {
	return &Session{
		transport: c.transport.withToken(token),
		account:   account,
		events:    events,
	}
}

func takeAccount(doc *wire.Document) (Account, error) {
	accountDoc, err := wire.Take(doc, commands.FieldAccount, wire.Struct)
	if err != nil {
		return Account{}, fmt.Errorf("backend did not respond with an account: %w", err)
	}

	return decodeAccount(accountDoc)
}
