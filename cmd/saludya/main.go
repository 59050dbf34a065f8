// Command saludya is a terminal front end for the SaludYa client SDK:
// it drives the session, booking and assistant flows that the mobile and
// web shells normally drive.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	saludya "github.com/jonatanlavado-utec/saludya-client"
	"github.com/jonatanlavado-utec/saludya-client/internal/config"
)

var proxyURL string
var debug bool
var asJSON bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saludya",
		Short: "SaludYa patient client: sessions, bookings and the health assistant",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("SALUDYA_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy-url", "", "Base URL of the SaludYa reverse proxy (defaults to SALUDYA_PROXY_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newUpdateProfileCmd())
	rootCmd.AddCommand(newAppointmentsCmd())
	rootCmd.AddCommand(newBookCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newDoctorsCmd())
	rootCmd.AddCommand(newSpecialtiesCmd())

	return rootCmd
}

// buildClient assembles an SDK client from the environment plus flags and
// runs the startup session restore, so every command starts from a
// settled session.
func buildClient(ctx context.Context) (*saludya.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	base := cfg.ProxyURL
	if proxyURL != "" {
		base = proxyURL
	}

	opts := []saludya.Option{
		saludya.WithHTTPTimeout(cfg.HTTPTimeout),
		saludya.WithLogger(log.Logger),
	}
	if cfg.AuthURL != "" {
		opts = append(opts, saludya.WithAuthURL(cfg.AuthURL))
	}
	if cfg.UsersURL != "" {
		opts = append(opts, saludya.WithUsersURL(cfg.UsersURL))
	}
	if cfg.AppointmentURL != "" {
		opts = append(opts, saludya.WithAppointmentsURL(cfg.AppointmentURL))
	}
	if cfg.PaymentURL != "" {
		opts = append(opts, saludya.WithPaymentsURL(cfg.PaymentURL))
	}
	if cfg.OrientationURL != "" {
		opts = append(opts, saludya.WithOrientationURL(cfg.OrientationURL))
	}
	if cfg.Debug {
		opts = append(opts, saludya.WithDebugLogging(true))
	}

	c, err := saludya.New(base, opts...)
	if err != nil {
		return nil, err
	}
	c.Session().Restore(ctx)
	return c, nil
}

func opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 60*time.Second)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func resultErr(res saludya.Result) error {
	if res.Success {
		return nil
	}
	return fmt.Errorf("%s", res.Error)
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			if err := resultErr(c.Session().Login(ctx, email, password)); err != nil {
				return err
			}
			user, _ := c.Session().User()
			if asJSON {
				printJSON(user)
				return nil
			}
			fmt.Printf("Sesión iniciada: %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var user saludya.User
	var password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			if err := resultErr(c.Session().Register(ctx, user, password)); err != nil {
				return err
			}
			created, _ := c.Session().User()
			if asJSON {
				printJSON(created)
				return nil
			}
			fmt.Printf("Cuenta creada: %s <%s>\n", created.FirstName, created.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&user.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "Last name(s)")
	cmd.Flags().StringVar(&user.DNI, "dni", "", "National ID")
	cmd.Flags().StringVar(&user.Phone, "phone", "", "Phone (optional)")
	cmd.Flags().StringVar(&user.BirthDate, "birth-date", "", "Birth date YYYY-MM-DD (optional)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and remove the persisted token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			c.Session().Logout()
			fmt.Println("Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the restored session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			user, okUser := c.Session().User()
			if !okUser {
				return fmt.Errorf("no hay sesión activa")
			}
			if asJSON {
				printJSON(user)
				return nil
			}
			fmt.Printf("%s %s <%s> dni=%s\n", user.FirstName, user.LastName, user.Email, user.DNI)
			return nil
		},
	}
}

func newUpdateProfileCmd() *cobra.Command {
	var user saludya.User
	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Update profile fields; omitted flags keep current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			if err := resultErr(c.Session().UpdateProfile(ctx, user)); err != nil {
				return err
			}
			updated, _ := c.Session().User()
			if asJSON {
				printJSON(updated)
				return nil
			}
			fmt.Println("Perfil actualizado")
			return nil
		},
	}
	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "Last name(s)")
	cmd.Flags().StringVar(&user.DNI, "dni", "", "National ID")
	cmd.Flags().StringVar(&user.Email, "email", "", "Email")
	cmd.Flags().StringVar(&user.Phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&user.BirthDate, "birth-date", "", "Birth date YYYY-MM-DD")
	return cmd
}

func newAppointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List or cancel your appointments",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments for the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			if err := c.Appointments().Refresh(ctx); err != nil {
				return err
			}
			items := c.Appointments().List()
			if asJSON {
				printJSON(items)
				return nil
			}
			for _, a := range items {
				fmt.Printf("%s  %s %s  %-12s %s (%s)\n", a.ID, a.Date, a.Time, a.Status, a.Doctor.Name, a.Doctor.Specialty)
			}
			return nil
		},
	}

	var apptID string
	cancelCmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an appointment locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			if err := c.Appointments().Refresh(ctx); err != nil {
				return err
			}
			c.Appointments().Cancel(apptID)
			fmt.Println("Cita cancelada")
			return nil
		},
	}
	cancelCmd.Flags().StringVar(&apptID, "id", "", "Appointment id")
	_ = cancelCmd.MarkFlagRequired("id")

	cmd.AddCommand(list)
	cmd.AddCommand(cancelCmd)
	return cmd
}

func newBookCmd() *cobra.Command {
	var doctorID, date, timeSlot, symptoms string
	var amount float64
	var card saludya.CardInfo
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Pay and book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd)
			defer cancel()
			c, err := buildClient(ctx)
			if err != nil {
				return err
			}
			doctor, found := c.Catalog().DoctorByID(doctorID)
			if !found {
				return fmt.Errorf("doctor %s no está en el catálogo", doctorID)
			}
			slot := saludya.TimeSlot{Date: date, Time: timeSlot, Available: true}
			res := c.Booking().ProcessPayment(ctx, amount, card, doctor, slot, symptoms)
			if err := resultErr(res); err != nil {
				return err
			}
			fmt.Printf("Cita reservada con %s el %s a las %s\n", doctor.Name, date, timeSlot)
			return nil
		},
	}
	cmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor id (see 'saludya doctors')")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVar(&timeSlot, "time", "", "Time HH:MM")
	cmd.Flags().StringVar(&symptoms, "symptoms", "", "Symptom notes (optional)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to charge; 0 uses the doctor's price")
	cmd.Flags().StringVar(&card.Number, "card-number", "", "Card number")
	cmd.Flags().StringVar(&card.Holder, "card-holder", "", "Card holder name")
	cmd.Flags().StringVar(&card.ExpiryDate, "expiry", "", "Card expiry MM/YY")
	cmd.Flags().StringVar(&card.CVV, "cvv", "", "Card CVV")
	_ = cmd.MarkFlagRequired("doctor")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("card-number")
	_ = cmd.MarkFlagRequired("card-holder")
	_ = cmd.MarkFlagRequired("expiry")
	_ = cmd.MarkFlagRequired("cvv")
	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the health assistant (interactive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(cmd.Context())
			if err != nil {
				return err
			}
			assistant := c.Assistant()
			for _, m := range assistant.Messages() {
				fmt.Printf("[%s] %s\n", m.Sender, m.Text)
			}
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("> ")
			for scanner.Scan() {
				reply := assistant.Send(cmd.Context(), scanner.Text())
				if reply.Message.Text != "" {
					fmt.Printf("[%s] %s\n", reply.Message.Sender, reply.Message.Text)
				}
				for _, d := range reply.SuggestedDoctors {
					fmt.Printf("  - %s (%s) ★%.2f %d años\n", d.Name, d.Specialty, d.Rating, d.Experience)
				}
				fmt.Print("> ")
			}
			return scanner.Err()
		},
	}
}

func newDoctorsCmd() *cobra.Command {
	var specialtyID string
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List catalog doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := saludya.New("http://localhost")
			if err != nil {
				return err
			}
			docs := c.Catalog().Doctors()
			if specialtyID != "" {
				docs = c.Catalog().DoctorsBySpecialtyID([]string{specialtyID})
			}
			if asJSON {
				printJSON(docs)
				return nil
			}
			for _, d := range docs {
				fmt.Printf("%s  %-30s %-16s %.0f€\n", d.ID, d.Name, d.Specialty, d.Price)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&specialtyID, "specialty", "", "Filter by specialty id")
	return cmd
}

func newSpecialtiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "specialties",
		Short: "List catalog specialties",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := saludya.New("http://localhost")
			if err != nil {
				return err
			}
			sps := c.Catalog().Specialties()
			if asJSON {
				printJSON(sps)
				return nil
			}
			for _, s := range sps {
				fmt.Printf("%s  %s %s: %s\n", s.ID, s.Icon, s.Name, s.Description)
			}
			return nil
		},
	}
}
