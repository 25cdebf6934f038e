package constants

import (
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	ParamsKey    ContextKey = "params"
	LoggerKey    ContextKey = "logger"
	PageContext  ContextKey = "pageCtx"
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	TenantIDKey  ContextKey = "tenantID"
	RequestIDKey ContextKey = "requestID"
)

var (
	Validate    = validator.New(validator.WithRequiredStructEnabled())
	FormDecoder = form.NewDecoder()
)
