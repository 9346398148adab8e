// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/session"
	"github.com/agntcy/anytype/server/store"
	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/server/types/adapters"
	"github.com/agntcy/anytype/utils/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var accountLogger = logging.Logger("controller/account")

// Method specific error codes.
const (
	errorWalletNotLoaded commands.ErrorCode = commands.ErrorMethodSpecific + iota
	errorAccountNotFound
)

type accountCtlr struct {
	store       types.StoreAPI
	accounts    types.AccountStoreAPI
	sessions    *session.Registry
	seedBundled bool
}

// WalletCreate loads a fresh wallet. The mnemonic is a random phrase, it is
// not derived from any key material.
func (c *accountCtlr) WalletCreate(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's WalletCreate method")

	rootPath, _, err := wire.TakeOptional(wire.NewDocument(req), commands.FieldRootPath, wire.String)
	if err != nil {
		return badInput("invalid root path: %v", err), nil
	}

	mnemonic := strings.ReplaceAll(uuid.NewString(), "-", " ")
	c.sessions.SetWallet(session.Wallet{Mnemonic: mnemonic, RootPath: rootPath})

	accountLogger.Info("Created wallet", "root_path", rootPath)

	return okResponse(map[string]*structpb.Value{
		commands.FieldMnemonic: structpb.NewStringValue(mnemonic),
	}), nil
}

func (c *accountCtlr) WalletRecover(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's WalletRecover method")

	doc := wire.NewDocument(req)

	mnemonic, err := wire.Take(doc, commands.FieldMnemonic, wire.String)
	if err != nil || mnemonic == "" {
		return badInput("mnemonic is required"), nil
	}

	rootPath, _, err := wire.TakeOptional(doc, commands.FieldRootPath, wire.String)
	if err != nil {
		return badInput("invalid root path: %v", err), nil
	}

	c.sessions.SetWallet(session.Wallet{Mnemonic: mnemonic, RootPath: rootPath})

	return okResponse(nil), nil
}

func (c *accountCtlr) WalletCreateSession(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's WalletCreateSession method")

	mnemonic, err := wire.Take(wire.NewDocument(req), commands.FieldMnemonic, wire.String)
	if err != nil || mnemonic == "" {
		return badInput("mnemonic is required"), nil
	}

	wallet, ok := c.sessions.Wallet()
	if !ok {
		return errorResponse(errorWalletNotLoaded, "wallet is not loaded"), nil
	}

	if wallet.Mnemonic != mnemonic {
		return badInput("mnemonic does not match the loaded wallet"), nil
	}

	return okResponse(map[string]*structpb.Value{
		commands.FieldToken: structpb.NewStringValue(c.sessions.Issue(mnemonic)),
	}), nil
}

func (c *accountCtlr) AccountCreate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's AccountCreate method")

	doc := wire.NewDocument(req)

	name, err := wire.Take(doc, commands.FieldName, wire.String)
	if err != nil {
		return badInput("invalid account name: %v", err), nil
	}

	storePath, _, err := wire.TakeOptional(doc, commands.FieldStorePath, wire.String)
	if err != nil {
		return badInput("invalid store path: %v", err), nil
	}

	wallet, ok := c.sessions.Wallet()
	if !ok {
		return errorResponse(errorWalletNotLoaded, "wallet is not loaded"), nil
	}

	account, err := newAccount(wallet.Mnemonic, name, storePath)
	if err != nil {
		return failureResponse(err), nil
	}

	if err := c.accounts.PutAccount(ctx, account); err != nil {
		return failureResponse(err), nil
	}

	if c.seedBundled {
		if err := seedSpace(ctx, c.store, account.SpaceID); err != nil {
			return failureResponse(err), nil
		}
	}

	accountLogger.Info("Created account", "id", account.ID, "space", account.SpaceID)

	return okResponse(map[string]*structpb.Value{
		commands.FieldAccount: adapters.NewAccountAdapter(account).ToValue(),
	}), nil
}

// AccountRecover announces the wallet's account on the caller's event queue.
func (c *accountCtlr) AccountRecover(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's AccountRecover method")

	token, ok := session.TokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing session token")
	}

	mnemonic, ok := c.sessions.Lookup(token)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unknown session token")
	}

	accountID, err := store.DeriveID([]byte(mnemonic))
	if err != nil {
		return failureResponse(err), nil
	}

	account, err := c.accounts.GetAccount(ctx, accountID)
	if status.Code(err) == codes.NotFound {
		return errorResponse(errorAccountNotFound, "no account found for wallet"), nil
	}

	if err != nil {
		return failureResponse(err), nil
	}

	c.sessions.Publish(token, &structpb.Struct{Fields: map[string]*structpb.Value{
		commands.EventMessages: wire.NewList(wire.NewStruct(map[string]*structpb.Value{
			commands.EventAccountShow: wire.NewStruct(map[string]*structpb.Value{
				commands.FieldAccount: adapters.NewAccountAdapter(account).ToValue(),
			}),
		})),
	}})

	return okResponse(nil), nil
}

func (c *accountCtlr) AccountSelect(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountLogger.Debug("Called account controller's AccountSelect method")

	id, err := wire.Take(wire.NewDocument(req), commands.FieldAccountID, wire.String)
	if err != nil {
		return badInput("invalid account id: %v", err), nil
	}

	account, err := c.accounts.GetAccount(ctx, id)
	if status.Code(err) == codes.NotFound {
		return errorResponse(errorAccountNotFound, "account not found: "+id), nil
	}

	if err != nil {
		return failureResponse(err), nil
	}

	return okResponse(map[string]*structpb.Value{
		commands.FieldAccount: adapters.NewAccountAdapter(account).ToValue(),
	}), nil
}

func (c *accountCtlr) MetricsSetParameters(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	doc := wire.NewDocument(req)

	platform, _, _ := wire.TakeOptional(doc, commands.FieldPlatform, wire.String)
	version, _, _ := wire.TakeOptional(doc, commands.FieldVersion, wire.String)

	accountLogger.Debug("Called account controller's MetricsSetParameters method", "platform", platform, "version", version)

	return okResponse(nil), nil
}

// newAccount derives the account and its personal space from the wallet.
func newAccount(mnemonic, name, storePath string) (*types.Account, error) {
	accountID, err := store.DeriveID([]byte(mnemonic))
	if err != nil {
		return nil, err
	}

	spaceID, err := store.DeriveID([]byte("space/" + mnemonic))
	if err != nil {
		return nil, err
	}

	return &types.Account{
		ID:       accountID,
		Name:     name,
		SpaceID:  spaceID,
		RootPath: storePath,
	}, nil
}
