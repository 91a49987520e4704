package main

import (
	"os"
	"time"

	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/internal/service"
	"go-ops-erp/pkg/config"
	"go-ops-erp/pkg/database"
	"go-ops-erp/pkg/logger"

	"github.com/joho/godotenv"
)

// Out-of-band bootstrap: establishes the permission catalog, system roles and
// their grants, backfills the default role, and creates the initial
// super_admin account. Safe to run any number of times.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogJSON)

	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := db.SetupJoinTable(&model.Role{}, "Permissions", &model.RolePermission{}); err != nil {
		log.WithError(err).Fatal("join table setup failed")
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Permission{}, &model.Role{}, &model.UserRoleAssignment{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	assignRepo := repository.NewAssignmentRepo(db)
	rbac := service.NewRBACService(db, assignRepo)

	result, err := rbac.Seed()
	if err != nil {
		log.WithError(err).Fatal("seed failed, nothing applied")
	}
	log.WithFields(map[string]interface{}{
		"roles":       len(result.Roles),
		"permissions": result.PermissionCount,
		"backfilled":  result.BackfilledUsers,
	}).Info("seed complete")

	// Initial super_admin account
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	superAdminRole, err := roleRepo.FindByName(model.RoleSuperAdmin)
	if err != nil {
		log.WithError(err).Fatal("super_admin role missing after seed")
	}

	admin, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		admin = &model.User{
			Email:    adminEmail,
			FullName: "Super Administrator",
			IsActive: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"
		if err := admin.SetPassword(adminPassword); err != nil {
			log.WithError(err).Fatal("failed to hash admin password")
		}
		if err := userRepo.Create(admin); err != nil {
			log.WithError(err).Fatal("failed to create admin user")
		}
		log.WithField("email", adminEmail).Info("admin user created")
	}

	if err := assignRepo.Assign(&model.UserRoleAssignment{
		UserID:     admin.ID,
		RoleID:     superAdminRole.ID,
		AssignedAt: time.Now(),
	}); err != nil {
		log.WithError(err).Fatal("failed to assign super_admin role")
	}
	log.Info("bootstrap finished")
}
