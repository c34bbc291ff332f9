package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"social-service/configs"
	"social-service/internal/comment"
	"social-service/internal/like"
	"social-service/internal/media"
	"social-service/internal/migrate"
	"social-service/internal/post"
	"social-service/internal/search"
	"social-service/internal/shared/db"
	"social-service/internal/shared/httpx"
	"social-service/internal/shared/metrics"
	"social-service/internal/shared/redisx"
	"social-service/internal/topic"
	"social-service/internal/user"
	"social-service/pkg/kafka"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	cfg := configs.LoadConfig()

	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	store := db.Open(cfg.DSN())

	rdb := redisx.Open(cfg.RedisAddr())
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	kWriter := kafka.NewWriter(cfg.KafkaBrokerURL, cfg.KafkaTopic)
	defer kWriter.Close()

	storage, err := media.NewStorage(media.StorageConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
	})
	if err != nil {
		log.Fatalf("media storage: %v", err)
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		log.Printf("media bucket: %v", err)
	}

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)

	postRepo := post.NewRepository(store)
	postSvc := post.NewService(postRepo, userRepo, kWriter)

	commentRepo := comment.NewRepository(store, rdb)
	commentSvc := comment.NewService(commentRepo, postRepo, userRepo)

	likeRepo := like.NewRepository(store, rdb)
	likeSvc := like.NewService(likeRepo)

	topicRepo := topic.NewRepository(store)
	topicSvc := topic.NewService(topicRepo)

	searchSvc := search.NewService(postRepo, userRepo, topicRepo)

	mediaSvc := media.NewService(storage, cfg.PublicMediaURL)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	ph := post.NewHandler(postSvc, commentSvc)
	mux.Handle("GET /posts", httpx.OptionalAuthMiddleware(httpx.Wrap(ph.List)))
	mux.Handle("GET /posts/{post_id}", httpx.Wrap(ph.GetByID))

	ch := comment.NewHandler(commentSvc)
	mux.Handle("GET /posts/{post_id}/comments", httpx.Wrap(ch.ListByPost))

	uh := user.NewHandler(userSvc)
	mux.Handle("GET /users/{address}", httpx.Wrap(uh.Get))

	th := topic.NewHandler(topicSvc)
	mux.Handle("GET /trending", httpx.Wrap(th.Trending))

	sh := search.NewHandler(searchSvc)
	mux.Handle("GET /search", httpx.Wrap(sh.Search))

	lh := like.NewHandler(likeSvc)
	mh := media.NewHandler(mediaSvc)

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}
	protect("POST /posts", httpx.Wrap(ph.Create))
	protect("POST /posts/{post_id}/like", httpx.Wrap(lh.Like))
	protect("DELETE /posts/{post_id}/like", httpx.Wrap(lh.Unlike))
	protect("POST /posts/{post_id}/comments", httpx.Wrap(ch.Create))
	protect("PUT /users/{address}", httpx.Wrap(uh.Update))
	protect("POST /users/{address}/follow", httpx.Wrap(uh.Follow))
	protect("DELETE /users/{address}/follow", httpx.Wrap(uh.Unfollow))
	protect("POST /media", httpx.Wrap(mh.Upload))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(metrics.Middleware(mux), "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("social-service listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
