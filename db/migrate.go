package db

import (
	"log"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.StaffProfile{},
		&models.TreatmentCentre{},
		&models.Service{},
		&models.Client{},
		&models.ClientProfile{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRolesAndPermissions()
	log.Println("Migrations applied")
}

func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "staff", Description: "Centre staff managing schedules and clients"},
		{Name: "client", Description: "Client using self-service booking"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_appointment", Description: "Book appointments", Resource: "appointments", Action: "create"},
		{Name: "read_appointments", Description: "View appointments", Resource: "appointments", Action: "read"},
		{Name: "update_appointment", Description: "Modify appointments", Resource: "appointments", Action: "update"},
		{Name: "delete_appointment", Description: "Remove appointments", Resource: "appointments", Action: "delete"},

		{Name: "create_client", Description: "Add client records", Resource: "clients", Action: "create"},
		{Name: "read_clients", Description: "View client records", Resource: "clients", Action: "read"},
		{Name: "update_client", Description: "Update client records", Resource: "clients", Action: "update"},
		{Name: "delete_client", Description: "Remove client records", Resource: "clients", Action: "delete"},

		{Name: "create_service", Description: "Add catalogue services", Resource: "services", Action: "create"},
		{Name: "read_services", Description: "View catalogue", Resource: "services", Action: "read"},
		{Name: "update_service", Description: "Edit catalogue services", Resource: "services", Action: "update"},
		{Name: "delete_service", Description: "Remove catalogue services", Resource: "services", Action: "delete"},

		{Name: "create_centre", Description: "Add centres", Resource: "centres", Action: "create"},
		{Name: "read_centres", Description: "View centres", Resource: "centres", Action: "read"},
		{Name: "update_centre", Description: "Edit centres", Resource: "centres", Action: "update"},
		{Name: "delete_centre", Description: "Remove centres", Resource: "centres", Action: "delete"},

		{Name: "create_staff", Description: "Add staff", Resource: "staff", Action: "create"},
		{Name: "read_staff", Description: "View staff", Resource: "staff", Action: "read"},
		{Name: "update_staff", Description: "Edit staff", Resource: "staff", Action: "update"},
		{Name: "delete_staff", Description: "Remove staff", Resource: "staff", Action: "delete"},
	}
	for _, permission := range permissions {
		var existing models.Permission
		if DB.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	// admin gets everything
	var adminRole models.Role
	if DB.Where("name = ?", "admin").First(&adminRole).RowsAffected > 0 {
		var all []models.Permission
		DB.Find(&all)
		DB.Model(&adminRole).Association("Permissions").Replace(all)
	}

	// staff work the desk but do not manage the catalogue or the staff list
	var staffRole models.Role
	if DB.Where("name = ?", "staff").First(&staffRole).RowsAffected > 0 {
		var staffPerms []models.Permission
		DB.Where("resource IN ?", []string{"appointments", "clients"}).Find(&staffPerms)
		var readPerms []models.Permission
		DB.Where("action = ? AND resource IN ?", "read", []string{"services", "centres", "staff"}).Find(&readPerms)
		DB.Model(&staffRole).Association("Permissions").Replace(append(staffPerms, readPerms...))
	}

	// clients book and view for themselves
	var clientRole models.Role
	if DB.Where("name = ?", "client").First(&clientRole).RowsAffected > 0 {
		var clientPerms []models.Permission
		DB.Where("name IN ?", []string{
			"create_appointment",
			"read_appointments",
			"update_appointment",
			"read_services",
			"read_centres",
		}).Find(&clientPerms)
		DB.Model(&clientRole).Association("Permissions").Replace(clientPerms)
	}
}
