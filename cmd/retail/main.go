package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jhoicas/retail-cli/internal/application/auth"
	"github.com/jhoicas/retail-cli/internal/application/usecase"
	"github.com/jhoicas/retail-cli/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-cli/internal/interfaces/cli"
	"github.com/jhoicas/retail-cli/pkg/config"
	"github.com/jhoicas/retail-cli/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 4 {
		return fmt.Errorf("Usage: %s <dbname> <port> <user>", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	// Los argumentos posicionales pisan la configuración de entorno. El
	// password nunca viaja por la línea de comandos.
	cfg.DB.DBName = os.Args[1]
	port, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("Usage: %s <dbname> <port> <user>", os.Args[0])
	}
	cfg.DB.Port = port
	cfg.DB.User = os.Args[3]

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Print("Connecting to database...")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Println()
		log.Error().Err(err).Msg("conexión a PostgreSQL falló")
		return err
	}
	fmt.Println("Done")
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	stores := postgres.NewStoreRepository(pool)
	products := postgres.NewProductRepository(pool)
	orders := postgres.NewOrderRepository(pool)
	warehouses := postgres.NewWarehouseRepository(pool)
	reports := postgres.NewReportRepository(pool)
	sequences := postgres.NewSequences(pool)
	txRunner := postgres.NewTxRunner(pool)

	deps := cli.Deps{
		Auth:     auth.NewUseCase(users),
		Stores:   usecase.NewStoreUseCase(stores, products),
		Orders:   usecase.NewOrderUseCase(txRunner, orders),
		Products: usecase.NewProductUseCase(txRunner, stores, products),
		Supplies: usecase.NewSupplyUseCase(txRunner, stores, warehouses),
		Reports:  usecase.NewReportUseCase(reports),
		Admin: usecase.NewAdminUseCase(users, stores, products, sequences, []string{
			postgres.SeqUsers,
			postgres.SeqOrders,
			postgres.SeqProductUpdates,
			postgres.SeqSupplyRequests,
		}),
	}

	menu := cli.New(log, os.Stdin, os.Stdout, os.Stderr, deps)
	err = menu.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, cli.ErrInputClosed) {
		log.Error().Err(err).Msg("la interfaz terminó con error")
	}

	fmt.Print("Disconnecting from database...")
	pool.Close()
	fmt.Println("Done")
	fmt.Println()
	fmt.Println("Bye !")
	return nil
}
