//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/x/catalog"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/execution"
	"github.com/reportgate/reportgate/x/policy"
	"github.com/reportgate/reportgate/x/util"
)

var catalogHandlerProvider = wire.NewSet(catalog.NewHandler, catalog.NewService, catalog.NewWalker, credential.NewResolver)
var executionHandlerProvider = wire.NewSet(execution.NewHandler, execution.NewService, credential.NewResolver)
var policyHandlerProvider = wire.NewSet(policy.NewHandler, policy.NewService, catalog.NewWalker, credential.NewResolver)

func SetupCatalogHandler(cl client.Client, config util.Config) catalog.Handler {
	wire.Build(catalogHandlerProvider)
	return catalog.Handler{}
}

func SetupExecutionHandler(cl client.Client, config util.Config) execution.Handler {
	wire.Build(executionHandlerProvider)
	return execution.Handler{}
}

func SetupPolicyHandler(cl client.Client, config util.Config) policy.Handler {
	wire.Build(policyHandlerProvider)
	return policy.Handler{}
}
