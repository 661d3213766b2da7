package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"agendamentos/internal/database"
	"agendamentos/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "agendamentos.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM analytics_events")
	db.Exec("DELETE FROM consultoria_bookings")
	db.Exec("DELETE FROM qualification_responses")
	db.Exec("DELETE FROM discount_codes")
	db.Exec("DELETE FROM consultoria_types")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@agendamentos.com.br",
		PasswordHash: string(adminHash),
		Name:         "Administrador",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("cliente123"), bcrypt.DefaultCost)
	client := domain.User{
		Email:        "cliente@example.com",
		PasswordHash: string(clientHash),
		Name:         "Cliente Teste",
		Role:         domain.RoleClient,
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating consultoria types...")
	consultorias := []domain.ConsultoriaType{
		{
			ID:              uuid.NewString(),
			Name:            "Diagnóstico Express",
			Slug:            "diagnostico-express",
			Description:     "Sessão de diagnóstico de marketing digital",
			PriceCents:      19700,
			DurationMinutes: 30,
			IsActive:        true,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Consultoria Estratégica",
			Slug:            "consultoria-estrategica",
			Description:     "Planejamento completo de aquisição e conversão",
			PriceCents:      49700,
			DurationMinutes: 60,
			IsActive:        true,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Mentoria de Escala",
			Slug:            "mentoria-de-escala",
			Description:     "Acompanhamento para operações em crescimento",
			PriceCents:      99700,
			DurationMinutes: 90,
			IsActive:        true,
		},
	}
	for i := range consultorias {
		if err := db.Create(&consultorias[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating discount codes...")
	maxUses := 100
	minPurchase := int64(40000)
	until := time.Now().AddDate(0, 3, 0)
	codes := []domain.DiscountCode{
		{
			ID:            uuid.NewString(),
			Code:          "BEMVINDO10",
			IsActive:      true,
			ValidFrom:     time.Now(),
			ValidUntil:    &until,
			MaxUses:       &maxUses,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 10,
		},
		{
			ID:                   uuid.NewString(),
			Code:                 "ESTRATEGIA50",
			IsActive:             true,
			ValidFrom:            time.Now(),
			MinimumPurchaseCents: &minPurchase,
			DiscountType:         domain.DiscountFixed,
			DiscountValue:        5000,
			ApplicableConsultoriaIDs: domain.StringList{
				consultorias[1].ID,
				consultorias[2].ID,
			},
		},
	}
	for i := range codes {
		if err := db.Create(&codes[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Printf("admin: admin@agendamentos.com.br / admin123")
	log.Printf("client: cliente@example.com / cliente123")
}
