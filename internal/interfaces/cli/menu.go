package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/retail-cli/internal/application/auth"
	"github.com/jhoicas/retail-cli/internal/application/usecase"
	"github.com/jhoicas/retail-cli/pkg/logger"
)

// Deps agrupa los casos de uso que consumen los handlers del menú.
type Deps struct {
	Auth     *auth.UseCase
	Stores   *usecase.StoreUseCase
	Orders   *usecase.OrderUseCase
	Products *usecase.ProductUseCase
	Supplies *usecase.SupplyUseCase
	Reports  *usecase.ReportUseCase
	Admin    *usecase.AdminUseCase
}

// Menu es el driver de la interfaz interactiva: dos menús anidados
// (pre-login y post-login) sobre una sesión explícita. Cada acción de menú
// tiene un handler; un fallo de handler se registra, se imprime y el menú
// continúa — solo la cancelación o el EOF lo terminan.
type Menu struct {
	log     *logger.Logger
	out     io.Writer
	errOut  io.Writer
	prompt  *Prompter
	session *Session
	deps    Deps
}

// New construye el driver del menú sobre los streams dados.
func New(log *logger.Logger, in io.Reader, out, errOut io.Writer, deps Deps) *Menu {
	return &Menu{
		log:     log,
		out:     out,
		errOut:  errOut,
		prompt:  NewPrompter(in, out),
		session: &Session{},
		deps:    deps,
	}
}

// Session expone la sesión, para los tests del driver.
func (m *Menu) Session() *Session {
	return m.session
}

// Run ejecuta el ciclo principal hasta que el usuario elige salir, el
// contexto se cancela o la entrada se agota.
func (m *Menu) Run(ctx context.Context) error {
	m.greeting()
	for {
		fmt.Fprintln(m.out, "MAIN MENU")
		fmt.Fprintln(m.out, "---------")
		fmt.Fprintln(m.out, "1. Create user")
		fmt.Fprintln(m.out, "2. Log in")
		fmt.Fprintln(m.out, "9. < EXIT")

		choice, err := m.prompt.Choice(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := m.guard(m.handleCreateUser(ctx)); err != nil {
				return err
			}
		case 2:
			if err := m.guard(m.handleLogIn(ctx)); err != nil {
				return err
			}
		case 9:
			return nil
		default:
			fmt.Fprintln(m.out, "Unrecognized choice!")
		}

		if m.session.LoggedIn() {
			if err := m.userLoop(ctx); err != nil {
				return err
			}
		}
	}
}

// userLoop es el menú post-login. Termina con Log out (vuelve al menú
// pre-login) o con un error terminal.
func (m *Menu) userLoop(ctx context.Context) error {
	for m.session.LoggedIn() {
		m.printUserMenu()
		choice, err := m.prompt.Choice(ctx)
		if err != nil {
			return err
		}

		var handlerErr error
		switch choice {
		case 1:
			handlerErr = m.handleViewStores(ctx)
		case 2:
			handlerErr = m.handleViewProducts(ctx)
		case 3:
			handlerErr = m.handlePlaceOrder(ctx)
		case 4:
			handlerErr = m.handleViewRecentOrders(ctx)
		case 5:
			handlerErr = m.handleUpdateProduct(ctx)
		case 6:
			handlerErr = m.handleViewRecentUpdates(ctx)
		case 7:
			handlerErr = m.handleViewPopularProducts(ctx)
		case 8:
			handlerErr = m.handleViewPopularCustomers(ctx)
		case 9:
			handlerErr = m.handleSupplyRequest(ctx)
		case 10:
			handlerErr = m.handleAdminPanel(ctx)
		case 20:
			m.session.LogOut()
		default:
			fmt.Fprintln(m.out, "Unrecognized choice!")
		}
		if err := m.guard(handlerErr); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) printUserMenu() {
	fmt.Fprintln(m.out, "MAIN MENU")
	fmt.Fprintln(m.out, "---------")
	fmt.Fprintln(m.out, "1. View Stores within 30 miles")
	fmt.Fprintln(m.out, "2. View Product List")
	fmt.Fprintln(m.out, "3. Place a Order")
	fmt.Fprintln(m.out, "4. View 5 recent orders")
	fmt.Fprintln(m.out, "5. Update Product")
	fmt.Fprintln(m.out, "6. View 5 recent Product Updates Info")
	fmt.Fprintln(m.out, "7. View 5 Popular Items")
	fmt.Fprintln(m.out, "8. View 5 Popular Customers")
	fmt.Fprintln(m.out, "9. Place Product Supply Request to Warehouse")
	if m.session.User().IsAdmin() {
		fmt.Fprintln(m.out, "10. Admin panel")
	}
	fmt.Fprintln(m.out, ".........................")
	fmt.Fprintln(m.out, "20. Log out")
}

func (m *Menu) greeting() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "*******************************************************")
	fmt.Fprintln(m.out, "              User Interface                           ")
	fmt.Fprintln(m.out, "*******************************************************")
}

// guard es la frontera de errores de los handlers: la cancelación y el EOF
// suben (terminan el proceso), cualquier otro fallo se registra, se imprime
// y el menú continúa.
func (m *Menu) guard(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrInputClosed) {
		return err
	}
	m.log.Error().Err(err).Msg("handler falló")
	fmt.Fprintln(m.errOut, err.Error())
	return nil
}
