package app

import (
	"errors"

	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/provider"
	"github.com/storefront-api/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService(addr, engine)
		services = append(services, httpService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode)")
	}

	// 资源服务最后停止，确保 HTTP 先完成收尾
	services = append(services, NewResourceService(closeDB(container), container.Cache.Close))

	return NewRunner(services...), nil
}

func closeDB(container *provider.Container) func() error {
	return func() error {
		if container == nil || container.DB == nil {
			return nil
		}
		sqlDB, err := container.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
