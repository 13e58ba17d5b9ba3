package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/database/mongoclient"
	"github.com/gavelapp/goapi/base/database/redisclient"
	"github.com/gavelapp/goapi/base/log"
	"github.com/gavelapp/goapi/base/metrics"
	bValidator "github.com/gavelapp/goapi/base/validator"
	mmiddleware "github.com/gavelapp/goapi/middleware"
	"github.com/gavelapp/goapi/service/query"
	"github.com/gavelapp/goapi/service/redis"
	account_repository "github.com/gavelapp/goapi/stores/account/repository"
	account_usecase "github.com/gavelapp/goapi/stores/account/usecase"
	auth_delivery "github.com/gavelapp/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/gavelapp/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/gavelapp/goapi/stores/auth/usecase"
	hc_delivery "github.com/gavelapp/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/gavelapp/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/gavelapp/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/gavelapp/goapi/stores/listing/delivery/http"
	listing_repository "github.com/gavelapp/goapi/stores/listing/repository"
	listing_usecase "github.com/gavelapp/goapi/stores/listing/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to the config file")
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// repositories
	accountRepo := account_repository.NewAccountRepo(q)
	listingRepo := listing_repository.NewListingRepo(q, redisCache)
	hcRepo := hc_repo.New(mongoClient, redisCache)

	// usecases
	account := account_usecase.NewAccountUseCase(accountRepo)
	listing := listing_usecase.NewListingUseCase(listingRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	hc := hc_usecase.New(hcRepo)

	// delivery
	adminIds := viper.GetStringSlice("admin.ids")
	authMw := auth_middleware.New(auth, adminIds)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, account)
	listing_delivery.New(e, authMw, listing)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
