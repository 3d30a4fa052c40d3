package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"storefront/pkg/api"
	"storefront/pkg/catalog"
	catalogmem "storefront/pkg/catalog/memory"
	catalogpg "storefront/pkg/catalog/postgres"
	"storefront/pkg/logger"
	"storefront/pkg/orders"
	ordersmem "storefront/pkg/orders/memory"
	orderspg "storefront/pkg/orders/postgres"
	"storefront/pkg/otel"
)

// config is read from the environment; a .env file is honored in dev.
type config struct {
	Addr        string        `env:"API_ADDR" envDefault:":8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	RedisAddr   string        `env:"REDIS_ADDR"`
	CacheTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
	Probability float64       `env:"TRACE_PROBABILITY" envDefault:"1.0"`
}

const catalogCacheKey = "catalog:list"

type server struct {
	products catalog.Repository
	orders   orders.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
	tracer   trace.Tracer
}

// @title Storefront API
// @version 1.0
// @description Product catalog and order intake for the storefront
// @BasePath /
func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	log, err := logger.New("storefront-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "storefront-api",
		Probability: cfg.Probability,
	})
	if err != nil {
		log.Error("init tracing", zap.Error(err))
		os.Exit(1)
	}
	defer shutdown(context.Background())

	srv := &server{
		// The fixture seed keeps the memory repo and the client fallback
		// in sync, so a fresh checkout works without any infrastructure.
		products: catalogmem.New(api.Fixture()),
		orders:   ordersmem.New(),
		log:      log,
		tracer:   tp.Tracer("storefront-api"),
	}

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", zap.Error(err))
			os.Exit(1)
		}
		if err := migrate(db); err != nil {
			log.Error("create tables", zap.Error(err))
			os.Exit(1)
		}
		srv.products = catalogpg.New(db)
		srv.orders = orderspg.New(db)
	}

	if cfg.RedisAddr != "" {
		srv.cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		srv.cacheTTL = cfg.CacheTTL
	}

	r := mux.NewRouter()
	r.Use(srv.traceMiddleware)
	r.HandleFunc("/product", srv.listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/product/{id}", srv.getProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/order", srv.createOrderHandler).Methods(http.MethodPost)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server closed", zap.Error(err))
	}
}

func migrate(db *sql.DB) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS products (id TEXT PRIMARY KEY, title TEXT, description TEXT, image TEXT, category TEXT, price BIGINT)",
		"CREATE TABLE IF NOT EXISTS orders (id TEXT PRIMARY KEY, payment TEXT, email TEXT, phone TEXT, address TEXT, total BIGINT, items TEXT[])",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

type listResponse struct {
	Total int            `json:"total"`
	Items []catalog.Item `json:"items"`
}

// listProductsHandler returns the full product list.
// @Summary List products
// @Produce json
// @Success 200 {object} listResponse
// @Router /product [get]
func (s *server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	if cached, ok := s.cachedList(ctx); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	items, err := s.products.List(ctx)
	if err != nil {
		s.log.Error("list products", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(listResponse{Total: len(items), Items: items})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.storeList(ctx, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *server) cachedList(ctx context.Context) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	body, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("catalog cache read", zap.Error(err))
		}
		return nil, false
	}
	return body, true
}

func (s *server) storeList(ctx context.Context, body []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, body, s.cacheTTL).Err(); err != nil {
		s.log.Warn("catalog cache write", zap.Error(err))
	}
}

// getProductHandler returns a single product.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Item
// @Router /product/{id} [get]
func (s *server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	item, err := s.products.Get(ctx, id)
	if err != nil {
		if err == catalog.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		s.log.Error("get product", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

type orderRequest struct {
	Payment string   `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Total   int64    `json:"total"`
	Items   []string `json:"items"`
}

type orderResponse struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

// createOrderHandler accepts a storefront order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body orderRequest true "Order"
// @Success 201 {object} orderResponse
// @Router /order [post]
func (s *server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid order payload", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 ||
		req.Payment == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		http.Error(w, "incomplete order", http.StatusUnprocessableEntity)
		return
	}

	o := orders.Order{
		ID:      uuid.NewString(),
		Payment: req.Payment,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Total:   req.Total,
		Items:   req.Items,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.log.Error("create order", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(orderResponse{ID: o.ID, Total: o.Total})
}

func (s *server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), s.tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
