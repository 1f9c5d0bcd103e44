package catalog

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jsando/patterns/abstractfactory"
	"github.com/jsando/patterns/builder"
	"github.com/jsando/patterns/factorymethod"
	"github.com/jsando/patterns/prototype"
	"github.com/jsando/patterns/records"
	"github.com/jsando/patterns/singleton"
	"golang.org/x/sync/errgroup"
)

func creationalDemos() []*Demo {
	return []*Demo{
		{
			Name:     "abstract-factory",
			Category: Creational,
			Pattern:  "Abstract Factory",
			Summary:  "Database and REST connection families",
			Run:      runAbstractFactory,
		},
		{
			Name:     "abstract-factory-gui",
			Category: Creational,
			Pattern:  "Abstract Factory",
			Summary:  "Windows and macOS widget families",
			Run:      runAbstractFactoryGUI,
		},
		{
			Name:     "factory-method",
			Category: Creational,
			Pattern:  "Factory Method",
			Summary:  "Database connections chosen by engine name",
			Run:      runFactoryMethod,
		},
		{
			Name:     "factory-method-dialog",
			Category: Creational,
			Pattern:  "Factory Method",
			Summary:  "Dialogs that create their own buttons",
			Run:      runFactoryMethodDialog,
		},
		{
			Name:     "factory-method-social",
			Category: Creational,
			Pattern:  "Factory Method",
			Summary:  "Posting through social network connectors",
			Run:      runFactoryMethodSocial,
		},
		{
			Name:     "builder",
			Category: Creational,
			Pattern:  "Builder",
			Summary:  "Pizzeria director driving a pizza chef",
			Run:      runBuilder,
		},
		{
			Name:     "builder-parts",
			Category: Creational,
			Pattern:  "Builder",
			Summary:  "Minimal and full-featured products from one builder",
			Run:      runBuilderParts,
		},
		{
			Name:     "prototype",
			Category: Creational,
			Pattern:  "Prototype",
			Summary:  "Cars cloned from per-make prototypes",
			Run:      runPrototype,
		},
		{
			Name:     "prototype-shapes",
			Category: Creational,
			Pattern:  "Prototype",
			Summary:  "Shapes cloned and compared with their originals",
			Run:      runPrototypeShapes,
		},
		{
			Name:     "singleton",
			Category: Creational,
			Pattern:  "Singleton",
			Summary:  "Concurrent first access to a lazily built instance",
			Run:      runSingleton,
		},
		{
			Name:     "singleton-records",
			Category: Creational,
			Pattern:  "Singleton",
			Summary:  "Police station records held in a process-wide registry",
			Run:      runSingletonRecords,
		},
	}
}

func runAbstractFactory(_ context.Context, env Env) error {
	db, err := abstractfactory.Lookup("BBDD")
	if err != nil {
		return err
	}
	for _, engine := range []string{"MySql", "PostgreSQL", "SQLite"} {
		conn := db.Database(engine)
		env.Log.Info(conn.Connect())
		env.Log.Info(conn.Disconnect())
	}

	rest, err := abstractfactory.Lookup("REST")
	if err != nil {
		return err
	}
	for _, area := range []string{"Sales", "Purchases", "Marketing"} {
		env.Log.Info(rest.REST(area).ReadURL("https://www.example.com/"))
	}
	return nil
}

func runAbstractFactoryGUI(_ context.Context, env Env) error {
	app := abstractfactory.NewApplication(abstractfactory.GUIFactoryFor(runtime.GOOS))
	for _, line := range app.Paint() {
		env.Log.Info(line)
	}
	return nil
}

func runFactoryMethod(_ context.Context, env Env) error {
	db := env.Config.Database
	factory := factorymethod.NewFactory(factorymethod.Settings{
		Host:     db.Host,
		Port:     db.Port,
		User:     db.User,
		Password: db.Password,
		Database: db.Name,
	})
	for _, name := range []string{"MySQL", "PostgreSQL", "SQLite"} {
		conn := factory.Connection(name)
		if conn.Engine() == factorymethod.UnknownEngine {
			env.Log.Warn(fmt.Sprintf("no connection for engine '%s'", name))
		}
		env.Log.Info(conn.Connect())
		env.Log.Info(conn.Disconnect())
	}
	return nil
}

func runFactoryMethodDialog(_ context.Context, env Env) error {
	for _, line := range factorymethod.RenderDialog(factorymethod.DialogFor(runtime.GOOS)) {
		env.Log.Info(line)
	}
	return nil
}

func runFactoryMethodSocial(_ context.Context, env Env) error {
	posters := []factorymethod.Poster{
		factorymethod.FacebookPoster{Login: "john_smith", Password: "******"},
		factorymethod.LinkedInPoster{Email: "john_smith@example.com", Password: "******"},
	}
	for _, p := range posters {
		for _, content := range []string{"Hello world!", "I had a large hamburger this morning!"} {
			for _, line := range factorymethod.Post(p, content) {
				env.Log.Info(line)
			}
		}
	}
	return nil
}

func runBuilder(_ context.Context, env Env) error {
	var director builder.Pizzeria
	chef := builder.NewPizzaBuilder()

	director.Italian(chef)
	chef.SetPortions(builder.Portions{Size: builder.Medium, Slices: 8})
	env.Log.Infof("Baked: %s", chef.Pizza())

	director.Light(chef)
	env.Log.Infof("Baked: %s", chef.Pizza())

	director.Mozzarella(chef)
	env.Log.Infof("Baked: %s", chef.Pizza())

	chef.SetPizzaType(builder.Custom)
	chef.SetTopping(builder.Oregano)
	chef.SetDough(builder.StoneBaked)
	chef.SetSauce(builder.LightSauce)
	chef.SetPortions(builder.Portions{Size: builder.Big, Slices: 12})
	env.Log.Infof("Custom: %s", chef.Pizza())
	return nil
}

func runBuilderParts(_ context.Context, env Env) error {
	b := builder.NewPartsBuilder()
	director := builder.Director{Builder: b}

	director.MinimalViable()
	env.Log.Infof("Standard basic product: %s", b.Product())

	director.FullFeatured()
	env.Log.Infof("Standard full featured product: %s", b.Product())

	b.PartA()
	b.PartC()
	env.Log.Infof("Custom product: %s", b.Product())
	return nil
}

func runPrototype(_ context.Context, env Env) error {
	type order struct {
		prototype    prototype.Car
		model, color string
	}
	alfa, ferrari, fiat := &prototype.AlfaRomeo{}, &prototype.Ferrari{}, &prototype.Fiat{}
	orders := []order{
		{alfa, "Alfa Romeo Giulietta", "Red"},
		{alfa, "Alfa Romeo Giulia GTA", "White"},
		{ferrari, "Ferrari 250 GT Berlinetta", "Black"},
		{ferrari, "Ferrari 612 Scaglietti", "Metallic"},
		{fiat, "Fiat Panda", "Black and white"},
		{fiat, "Fiat Ducato", "Gold"},
	}
	for _, o := range orders {
		car := o.prototype.Clone()
		car.SetModel(o.model)
		car.SetColor(o.color)
		env.Log.Info(car.Description())
		if car == o.prototype {
			return fmt.Errorf("clone of %s is the prototype itself", o.prototype.Make())
		}
	}
	return nil
}

func runPrototypeShapes(_ context.Context, env Env) error {
	circle := &prototype.Circle{X: 10, Y: 20, Radius: 15, Color: "red"}
	shapes := []prototype.Shape{
		circle,
		circle.Clone(),
		&prototype.Rectangle{X: 10, Y: 20, Width: 10, Height: 20, Color: "blue"},
	}
	_, results := prototype.CloneAndCompare(shapes)
	for _, r := range results {
		switch {
		case !r.Distinct:
			env.Log.Error(fmt.Sprintf("%d: shape objects are the same", r.Index))
		case r.Equal:
			env.Log.Infof("%d: shapes are different objects and they are identical", r.Index)
		default:
			env.Log.Warn(fmt.Sprintf("%d: shapes are different objects but they are not identical", r.Index))
		}
	}
	return nil
}

func runSingleton(ctx context.Context, env Env) error {
	cfg := env.Config.Singleton
	if singleton.Initialized() {
		env.Log.Info("Instance already exists; supplied values will be ignored")
	}

	results := make([]*singleton.Instance, cfg.Callers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Callers; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inst, err := singleton.GetInstance(fmt.Sprintf("%s-%d", cfg.Value, i))
			if err != nil {
				return err
			}
			results[i] = inst
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("getting instance: %w", err)
	}

	for i, inst := range results {
		if inst != results[0] {
			return fmt.Errorf("caller %d got a different instance", i)
		}
	}
	env.Log.Infof("%d callers share one instance with value %q", cfg.Callers, results[0].Value())

	again, err := singleton.GetInstance("ignored")
	if err != nil {
		return err
	}
	if again != results[0] {
		return fmt.Errorf("instance changed after initialization")
	}
	env.Log.Infof("Later call with a new value still returns %q", again.Value())
	return nil
}

func runSingletonRecords(_ context.Context, env Env) error {
	registry := records.Default(env.Config.Records.StationName)
	if len(registry.PoliceByAge()) == 0 {
		if err := seedRecords(registry); err != nil {
			return err
		}
	}
	registry.ComputeSalaries()

	env.Log.Infof("Station: %s", registry.Station())
	env.Log.Info("Police by age:")
	for _, p := range registry.PoliceByAge() {
		env.Log.Info("  " + p.String())
	}
	env.Log.Info("Police by salary:")
	for _, p := range registry.PoliceBySalary() {
		env.Log.Info("  " + p.String())
	}
	env.Log.Info("Administrative staff by surname:")
	for _, a := range registry.AdministrativeBySurname() {
		env.Log.Info("  " + a.String())
	}
	if records.Default("another station") != registry {
		return fmt.Errorf("records registry is not shared")
	}
	return nil
}

func seedRecords(r *records.Registry) error {
	officers := []records.Police{
		{Person: records.Person{Code: "P001", FirstName: "Laura", LastName: "Gomez", ID: 1010}, Age: 45, Rank: 4, Seniority: 20},
		{Person: records.Person{Code: "P002", FirstName: "Mario", LastName: "Diaz", ID: 1020}, Age: 29, Rank: 2, Seniority: 5},
		{Person: records.Person{Code: "P003", FirstName: "Sofia", LastName: "Ruiz", ID: 1030}, Age: 36, Rank: 3, Seniority: 12},
	}
	for _, p := range officers {
		if err := r.RegisterPolice(p); err != nil {
			return err
		}
	}
	r.RegisterAdministrative(records.Administrative{
		Person: records.Person{Code: "A001", FirstName: "Carlos", LastName: "Vera", ID: 2010}, Sector: "Archive", Position: "Clerk",
	})
	r.RegisterAdministrative(records.Administrative{
		Person: records.Person{Code: "A002", FirstName: "Elena", LastName: "Alvarez", ID: 2020}, Sector: "Human resources", Position: "Manager",
	})
	return nil
}
