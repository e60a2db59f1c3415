package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hmaq1985-lang/overtime-system/internal/config"
	appHTTP "github.com/hmaq1985-lang/overtime-system/internal/handler/http"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/storage"
	"github.com/hmaq1985-lang/overtime-system/internal/repository/postgresql"
	backupService "github.com/hmaq1985-lang/overtime-system/internal/service/backup"
	employeeService "github.com/hmaq1985-lang/overtime-system/internal/service/employee"
	periodService "github.com/hmaq1985-lang/overtime-system/internal/service/period"
	recordService "github.com/hmaq1985-lang/overtime-system/internal/service/record"
	reportService "github.com/hmaq1985-lang/overtime-system/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to prepare database schema: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	snapshotSource := postgresql.NewSnapshotSource(db)

	backupStorage, err := storage.NewLocalStorage(cfg.Backup.Dir)
	if err != nil {
		log.Fatal("Failed to initialize backup storage: ", err)
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, recordRepo)
	periodSvc := periodService.NewPeriodService(db, periodRepo)
	recordSvc := recordService.NewRecordService(recordRepo, employeeRepo, periodRepo)
	reportSvc := reportService.NewReportService(employeeRepo, recordRepo)
	backupSvc := backupService.NewBackupService(snapshotSource, backupStorage)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	backupHandler := appHTTP.NewBackupHandler(backupSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		employeeHandler,
		periodHandler,
		recordHandler,
		reportHandler,
		backupHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
