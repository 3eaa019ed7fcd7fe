package config

import (
	"fmt"

	"github.com/techguardpro/techguard-api/models"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string { return &s }

// Seed loads the shop's starter data: the operator accounts, the monitored
// device inventory, the PDV catalog, the maintenance history, and a few open
// service orders. Seeding is idempotent: it is skipped when accounts already
// exist, so durable deployments keep their data across restarts.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Name: "João Silva", Username: "admin", Role: models.RoleAdministrador},
		{Name: "Ricardo Martins", Username: "ricardo", Role: models.RoleTecnico},
		{Name: "Ana Tech", Username: "ana", Role: models.RoleTecnico},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	devices := []models.Device{
		{ID: "1", Name: "Câmera Portaria", Type: "Câmera", IPAddress: strPtr("192.168.1.50"), Status: models.DeviceStatusOnline, LastSeen: "Agora", Location: "Entrada Principal"},
		{ID: "2", Name: "Servidor Local", Type: "Servidor", IPAddress: strPtr("192.168.1.10"), Status: models.DeviceStatusMaintenance, LastSeen: "Há 2 horas", Location: "Data Center"},
		{ID: "3", Name: "DVR HIK-01", Type: "DVR/NVR", IPAddress: strPtr("192.168.1.100"), Status: models.DeviceStatusOffline, LastSeen: "Há 1 dia", Location: "Rack Sala 2"},
		{ID: "4", Name: "PC Adm 01", Type: "PC", IPAddress: strPtr("192.168.1.15"), Status: models.DeviceStatusOnline, LastSeen: "Agora", Location: "Escritório"},
	}
	if err := db.Create(&devices).Error; err != nil {
		return fmt.Errorf("failed to seed devices: %w", err)
	}

	products := []models.Product{
		{ID: "p1", Name: "Câmera IP Full HD 1080p", Price: 289.90, Category: "CFTV", Stock: 15},
		{ID: "p2", Name: "DVR Intelbras 4 Canais Multi HD", Price: 450.00, Category: "CFTV", Stock: 8},
		{ID: "p3", Name: "Cabo Coaxial 4mm + Bipolar (100m)", Price: 125.00, Category: "Infra", Stock: 20},
		{ID: "p4", Name: "Conector BNC Mola com Parafuso", Price: 3.50, Category: "Acessórios", Stock: 200},
		{ID: "p5", Name: "Fonte 12V 5A Chaveada Colmeia", Price: 45.90, Category: "Energia", Stock: 35},
		{ID: "p6", Name: "SSD Kingston 480GB A400", Price: 189.00, Category: "Informática", Stock: 12},
		{ID: "p7", Name: "HD Seagate SkyHawk 2TB (CFTV)", Price: 399.00, Category: "CFTV", Stock: 6},
		{ID: "p8", Name: "Mouse USB Óptico Simples", Price: 25.00, Category: "Informática", Stock: 45},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	logs := []models.MaintenanceLog{
		{ID: "1", DeviceID: "1", Date: "2023-10-24", Description: "Limpeza de lentes e ajuste de foco.", Technician: "João Silva", Cost: floatPtr(150)},
		{ID: "2", DeviceID: "2", Date: "2023-10-20", Description: "Troca de pasta térmica e limpeza interna do servidor.", Technician: "João Silva", Cost: floatPtr(200)},
		{ID: "3", DeviceID: "3", Date: "2023-10-15", Description: "Formatação de HD e reconfiguração de acesso remoto.", Technician: "Ricardo M.", Cost: floatPtr(350)},
		{ID: "4", DeviceID: "1", Date: "2023-09-01", Description: "Instalação inicial e crimpagem de conectores.", Technician: "João Silva"},
	}
	if err := db.Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to seed maintenance logs: %w", err)
	}

	orders := []models.ServiceOrder{
		{Code: "OS-1001", ClientName: "Carlos Eduardo", ClientPhone: "(11) 98888-7777", DeviceModel: "Dell Vostro 3500", IssueDescription: "Não liga, suspeita de curto na placa mãe.", EntryDate: "2023-10-25", Status: models.OSStatusEmAnalise, Priority: models.PriorityAlta, Technician: "João Silva"},
		{Code: "OS-1002", ClientName: "Ana Maria", ClientPhone: "(11) 97777-6666", DeviceModel: "MacBook Air M1", IssueDescription: "Tela trincada.", EntryDate: "2023-10-26", Status: models.OSStatusAguardandoPecas, Priority: models.PriorityMedia, EstimatedCost: floatPtr(1200), Technician: "João Silva"},
		{Code: "OS-1003", ClientName: "Condomínio Solar", ClientPhone: "(11) 3333-2222", DeviceModel: "DVR Intelbras 16 canais", IssueDescription: "HD não reconhecido.", EntryDate: "2023-10-27", Status: models.OSStatusPronto, Priority: models.PriorityAlta, EstimatedCost: floatPtr(450), Technician: "Ricardo Martins"},
	}
	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed service orders: %w", err)
	}

	return nil
}

// Migrate runs the schema migration for every model owned by the API.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ServiceOrder{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.Device{},
		&models.MaintenanceLog{},
		&models.Product{},
		&models.CartItem{},
		&models.Sale{},
		&models.SaleItem{},
	)
}
