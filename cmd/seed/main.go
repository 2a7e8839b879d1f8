// Siembra datos iniciales para desarrollo: bodega por defecto, usuario
// administrador y un catálogo de repuestos de dron de ejemplo. Con el flag
// -movements genera además un historial sintético de movimientos pasando por
// el coordinador, de modo que el ledger resultante sea consistente.
//
// Uso: go run ./cmd/seed [-movements N]
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dronify/warehouse-api/internal/application/inventory"
	"github.com/dronify/warehouse-api/internal/domain/entity"
	"github.com/dronify/warehouse-api/internal/infrastructure/postgres"
	"github.com/dronify/warehouse-api/pkg/config"
	"github.com/dronify/warehouse-api/pkg/logger"
)

const (
	adminEmail    = "admin@dronify.local"
	adminPassword = "admin123" // solo para entornos de desarrollo
)

type seedItem struct {
	name        string
	itemType    entity.ItemType
	description string
	quantity    int64
	minQuantity int64
	location    string
	scanCode    string
}

var catalog = []seedItem{
	{"Batería LiPo 6S 22000mAh", entity.TypeBattery, "Batería de vuelo principal", 24, 8, "A1", "QR-BAT-6S-22000"},
	{"Motor U8 Lite", entity.TypeMotor, "Motor brushless para brazo", 40, 12, "A2", "QR-MOT-U8L"},
	{"ESC Alpha 60A", entity.TypeESC, "Controlador electrónico de velocidad", 30, 10, "A3", "QR-ESC-A60"},
	{"Frame carbono 900mm", entity.TypeFrame, "Chasis plegable de fibra", 10, 3, "B1", "QR-FRM-900"},
	{"Controladora Cube Orange", entity.TypeController, "Autopiloto principal", 12, 4, "B2", "QR-CTL-CUBE"},
	{"Hélice 29x9.5", entity.TypePropeller, "Par de hélices plegables", 60, 20, "B3", "QR-PRP-2995"},
	{"Cámara térmica H20T", entity.TypeCamera, "Sensor térmico con zoom", 6, 2, "C1", "QR-CAM-H20T"},
	{"Dron patrulla P-4", entity.TypeDrone, "Unidad completa lista para vuelo", 4, 2, "C2", "QR-DRN-P4"},
}

func main() {
	movements := flag.Int("movements", 0, "cantidad de movimientos sintéticos a generar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	catalogUC := inventory.NewCatalogUseCase(txRunner, itemRepo, movementRepo, warehouseRepo)
	applyUC := inventory.NewApplyMovementUseCase(txRunner)

	// Bodega por defecto
	warehouse, err := warehouseRepo.GetByID(cfg.Warehouse.DefaultID)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar bodega por defecto")
	}
	if warehouse == nil {
		warehouse = &entity.Warehouse{Name: "Bodega principal", CreatedAt: time.Now()}
		id, err := warehouseRepo.Create(warehouse)
		if err != nil {
			log.Fatal().Err(err).Msg("crear bodega por defecto")
		}
		warehouse.ID = id
		log.Info().Int64("warehouse_id", id).Msg("bodega creada")
	}

	// Usuario administrador
	admin, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar administrador")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("generar hash de contraseña")
		}
		now := time.Now()
		admin = &entity.User{
			FirstName:    "Admin",
			LastName:     "Dronify",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		id, err := userRepo.Create(admin)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		admin.ID = id
		log.Info().Str("email", adminEmail).Msg("administrador creado")
	}

	// Catálogo de ejemplo (idempotente por scan code)
	var itemIDs []int64
	for _, s := range catalog {
		existing, err := itemRepo.GetByScanCode(warehouse.ID, s.scanCode)
		if err != nil {
			log.Fatal().Err(err).Str("scan_code", s.scanCode).Msg("consultar ítem")
		}
		if existing != nil {
			itemIDs = append(itemIDs, existing.ID)
			continue
		}
		item, err := catalogUC.AddItem(ctx, inventory.AddItemDTO{
			WarehouseID: warehouse.ID,
			Name:        s.name,
			Type:        s.itemType,
			Description: s.description,
			Quantity:    s.quantity,
			MinQuantity: s.minQuantity,
			Location:    s.location,
			ScanCode:    s.scanCode,
			UserID:      admin.ID,
		})
		if err != nil {
			log.Fatal().Err(err).Str("name", s.name).Msg("crear ítem")
		}
		itemIDs = append(itemIDs, item.ID)
		log.Info().Int64("item_id", item.ID).Str("sku", item.SKU).Msg("ítem creado")
	}

	if *movements > 0 {
		seedMovements(ctx, log, applyUC, warehouse.ID, admin.ID, itemIDs, *movements)
	}

	log.Info().Msg("seed completado")
}

// seedMovements genera un historial de movimientos sintéticos. Cada uno pasa
// por el coordinador, así el stock nunca queda negativo ni el ledger huérfano.
func seedMovements(
	ctx context.Context,
	log *logger.Logger,
	applyUC *inventory.ApplyMovementUseCase,
	warehouseID, userID int64,
	itemIDs []int64,
	count int,
) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	actions := []entity.Action{entity.ActionAdd, entity.ActionRemove, entity.ActionReturn}
	applied := 0
	for i := 0; i < count; i++ {
		in := inventory.MovementInputDTO{
			WarehouseID: warehouseID,
			ItemID:      itemIDs[rng.Intn(len(itemIDs))],
			UserID:      userID,
			Action:      actions[rng.Intn(len(actions))],
			Quantity:    int64(1 + rng.Intn(5)),
			Note:        "movimiento sintético de seed",
		}
		if _, err := applyUC.ApplyMovement(ctx, in); err != nil {
			// Un REMOVE puede exceder el stock; se omite y se sigue.
			continue
		}
		applied++
	}
	log.Info().Int("applied", applied).Int("requested", count).Msg("movimientos sintéticos generados")
}
