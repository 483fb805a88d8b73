package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/workgrid-hq/hr-portal/internal/config"
	appHTTP "github.com/workgrid-hq/hr-portal/internal/handler/http"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
	assetService "github.com/workgrid-hq/hr-portal/internal/service/asset"
	attendanceService "github.com/workgrid-hq/hr-portal/internal/service/attendance"
	authService "github.com/workgrid-hq/hr-portal/internal/service/auth"
	employeeService "github.com/workgrid-hq/hr-portal/internal/service/employee"
	leaveService "github.com/workgrid-hq/hr-portal/internal/service/leave"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "hr-portal"),
		slog.String("env", cfg.App.Env),
	)

	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.TTL)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService.NewAuthService(upstreamClient, jwtService, logger)),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(upstreamClient)),
		Leave:      appHTTP.NewLeaveHandler(leaveService.NewLeaveService(upstreamClient)),
		Employee:   appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(upstreamClient)),
		Asset:      appHTTP.NewAssetHandler(assetService.NewAssetService(upstreamClient)),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("portal listening",
		slog.String("addr", addr),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
