package cmd

import (
	"fmt"
	"log"

	employeeDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/employee"
	leaveDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/leave"
	userDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/user"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"users", "user_types", "leave_types", "departments"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing seed tables")
		}

		userTypes := []userDatamodel.UserType{
			{Urid: "1", UserType: "Admin"},
			{Urid: "2", UserType: "HR"},
			{Urid: "3", UserType: "Employee"},
		}
		for _, ut := range userTypes {
			var exists int64
			gormDB.Model(&userDatamodel.UserType{}).Where("urid = ?", ut.Urid).Count(&exists)
			if exists > 0 {
				continue
			}
			if err := gormDB.Create(&ut).Error; err != nil {
				log.Fatalf("failed to seed user type %s: %v", ut.Urid, err)
			}
		}
		fmt.Println("Seeded user types")

		adminEmail := "admin@ems.local"
		var exists int64
		gormDB.Model(&userDatamodel.User{}).Where("email = ?", adminEmail).Count(&exists)
		if exists == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}
			admin := userDatamodel.User{
				Eid:          "E001",
				Email:        adminEmail,
				PasswordHash: string(hash),
				Urid:         "1",
			}
			if err := gormDB.Create(&admin).Error; err != nil {
				log.Fatalf("failed to seed admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		} else {
			fmt.Println("admin user already exists")
		}

		departments := []employeeDatamodel.Department{
			{Dno: "D001", Dname: "Engineering", Dlocation: "Colombo"},
			{Dno: "D002", Dname: "Human Resources", Dlocation: "Colombo"},
			{Dno: "D003", Dname: "Finance", Dlocation: "Kandy"},
		}
		for _, d := range departments {
			var cnt int64
			gormDB.Model(&employeeDatamodel.Department{}).Where("department_number = ?", d.Dno).Count(&cnt)
			if cnt > 0 {
				continue
			}
			if err := gormDB.Create(&d).Error; err != nil {
				log.Fatalf("failed to seed department %s: %v", d.Dno, err)
			}
		}
		fmt.Println("Seeded departments")

		leaveTypes := []leaveDatamodel.LeaveType{
			{Lid: "LT01", LeaveType: "Annual"},
			{Lid: "LT02", LeaveType: "Casual"},
			{Lid: "LT03", LeaveType: "Medical"},
		}
		for _, lt := range leaveTypes {
			var cnt int64
			gormDB.Model(&leaveDatamodel.LeaveType{}).Where("lid = ?", lt.Lid).Count(&cnt)
			if cnt > 0 {
				continue
			}
			if err := gormDB.Create(&lt).Error; err != nil {
				log.Fatalf("failed to seed leave type %s: %v", lt.Lid, err)
			}
		}
		fmt.Println("Seeded leave types")
	},
}
