package catalog

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

// Opening hours shared by every branch: Monday to Saturday 09:30-20:00,
// Sunday 11:30-15:00.
var standardHours = domain.WeekSchedule{
	Monday:    domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Tuesday:   domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Wednesday: domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Thursday:  domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Friday:    domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Saturday:  domain.DaySchedule{Open: "09:30", Close: "20:00"},
	Sunday:    domain.DaySchedule{Open: "11:30", Close: "15:00"},
}

var servicesData = []domain.Service{
	{
		ID:              "corte-desvanecido",
		Name:            "Corte Desvanecido",
		Description:     "Lavado de cabello + Asesoría en tu corte",
		Price:           150,
		DurationMinutes: 55,
		Category:        domain.CategoryHaircut,
		Image:           "/images/services/corte-desvanecido.jpg",
	},
	{
		ID:              "corte-normal",
		Name:            "Corte de Cabello Normal",
		Description:     "Lavado de cabello + Asesoría en su corte",
		Price:           120,
		DurationMinutes: 25,
		Category:        domain.CategoryHaircut,
		Image:           "/images/services/corte-normal.jpg",
	},
	{
		ID:              "corte-tijera",
		Name:            "Corte a Pura Tijera",
		Description:     "Incluye lavado con shampoo de keratina y acondicionador para cabellos largos",
		Price:           150,
		DurationMinutes: 40,
		Category:        domain.CategoryHaircut,
		Image:           "/images/services/corte-tijera.jpg",
	},
	{
		ID:              "arreglo-barba",
		Name:            "Arreglo de Barba y Delineado",
		Description:     "Rebajada de barba al nivel que gustes y delineado conforme a tu rostro",
		Price:           100,
		DurationMinutes: 20,
		Category:        domain.CategoryBeard,
		Image:           "/images/services/arreglo-barba.jpg",
	},
	{
		ID:              "barba-pigmento",
		Name:            "Arreglo de Barba + Pigmento Semipermanente",
		Description:     "Delineado perfecto + pigmentación que dura 5 días",
		Price:           150,
		DurationMinutes: 25,
		Category:        domain.CategoryBeard,
		Image:           "/images/services/barba-pigmento.jpg",
	},
	{
		ID:              "rasurado-barba",
		Name:            "Rasurado de Barba",
		Description:     "Rasurado completo con navaja o máquina shaver",
		Price:           100,
		DurationMinutes: 10,
		Category:        domain.CategoryBeard,
		Image:           "/images/services/rasurado.jpg",
	},
	{
		ID:              "ritual-barba-premium",
		Name:            "Ritual de Barba Premium",
		Description:     "Vapor caliente, exfoliación, mascarilla de carbón activado, pigmentación",
		Price:           200,
		DurationMinutes: 30,
		Category:        domain.CategoryBeard,
		Image:           "/images/services/ritual-premium.jpg",
	},
	{
		ID:              "facial-premium",
		Name:            "Facial Premium",
		Description:     "4 productos de calidad: exfoliante, mascarilla, arcilla, peeling gel",
		Price:           200,
		DurationMinutes: 20,
		Category:        domain.CategoryTreatment,
		Image:           "/images/services/facial-premium.jpg",
	},
	{
		ID:              "facial-basico",
		Name:            "Facial Básico",
		Description:     "Exfoliante para imperfecciones + mascarilla para puntos negros",
		Price:           100,
		DurationMinutes: 15,
		Category:        domain.CategoryTreatment,
		Image:           "/images/services/facial-basico.jpg",
	},
	{
		ID:              "delineado-ceja",
		Name:            "Delineado de Ceja",
		Description:     "Perfilado y delineado de ceja con navaja",
		Price:           50,
		DurationMinutes: 10,
		Category:        domain.CategoryStyling,
		Image:           "/images/services/delineado-ceja.jpg",
	},

	// Packages: bundled fixed-price combinations, modeled as services
	{
		ID:              "paquete-ejecutivo-1",
		Name:            "Paquete Ejecutivo - Opción 1",
		Description:     "Corte desvanecido + arreglo de barba y delineado",
		Price:           220,
		DurationMinutes: 70,
		Category:        domain.CategoryCombo,
		Image:           "/images/services/paquete-ejecutivo-1.jpg",
	},
	{
		ID:              "paquete-ejecutivo-2",
		Name:            "Paquete Ejecutivo - Opción 2",
		Description:     "Corte normal + rasurado de barba + facial básico",
		Price:           280,
		DurationMinutes: 50,
		Category:        domain.CategoryCombo,
		Image:           "/images/services/paquete-ejecutivo-2.jpg",
	},
	{
		ID:              "paquete-buchon-1",
		Name:            "Paquete Buchón - Opción 1",
		Description:     "Corte desvanecido + ritual de barba premium",
		Price:           320,
		DurationMinutes: 85,
		Category:        domain.CategoryCombo,
		Image:           "/images/services/paquete-buchon-1.jpg",
	},
	{
		ID:              "paquete-lion-king",
		Name:            "Paquete Lion King",
		Description:     "Corte a pura tijera + ritual de barba premium + facial premium",
		Price:           470,
		DurationMinutes: 90,
		Category:        domain.CategoryCombo,
		Image:           "/images/services/paquete-lion-king.jpg",
	},
}

var productsData = []domain.Product{
	{
		ID:          "pomada-mate",
		Name:        "Pomada Mate",
		Description: "Fijación fuerte sin brillo, 120 g",
		Price:       180,
		Image:       "/images/products/pomada-mate.jpg",
	},
	{
		ID:          "cera-clasica",
		Name:        "Cera Clásica",
		Description: "Fijación media con brillo natural, 100 g",
		Price:       150,
		Image:       "/images/products/cera-clasica.jpg",
	},
	{
		ID:          "shampoo-keratina",
		Name:        "Shampoo de Keratina",
		Description: "Shampoo reparador para uso diario, 400 ml",
		Price:       220,
		Image:       "/images/products/shampoo-keratina.jpg",
	},
	{
		ID:          "aceite-barba",
		Name:        "Aceite para Barba",
		Description: "Aceite hidratante con esencia de madera, 30 ml",
		Price:       200,
		Image:       "/images/products/aceite-barba.jpg",
	},
}

var barbersData = []domain.Barber{
	{
		ID:              "leon-rivera-jr",
		Name:            "Leon Rivera Jr.",
		Specialties:     []string{"Cortes desvanecidos", "Ritual de barba", "Paquetes premium"},
		ExperienceYears: 10,
		Rating:          5.0,
		Avatar:          "/images/barbers/leon-rivera.jpg",
		Bio:             "Fundador y barbero principal. Especialista en cortes modernos y rituales de barba premium.",
	},
	{
		ID:              "pablo-gomez",
		Name:            "Pablo Gómez",
		Specialties:     []string{"Cortes a tijera", "Faciales", "Delineado de cejas"},
		ExperienceYears: 7,
		Rating:          5.0,
		Avatar:          "/images/barbers/pablo-gomez.jpg",
		Bio:             "Experto en técnicas de corte a tijera y tratamientos faciales para caballeros.",
	},
	{
		ID:              "juan-jose",
		Name:            "Juan José",
		Specialties:     []string{"Arreglo de barba", "Pigmentación", "Tintes"},
		ExperienceYears: 6,
		Rating:          5.0,
		Avatar:          "/images/barbers/juan-jose.jpg",
		Bio:             "Especialista en arreglo y estilizado de barba, pigmentación y aplicación de tintes.",
	},
}

var barbershopsData = []domain.Barbershop{
	{
		ID:          "barberweb-centro",
		Name:        "BarberWeb Centro",
		Description: "La sucursal original en el corazón de la ciudad.",
		Address:     "Av. Principal 123, Col. Centro, CP 12345",
		Phone:       "+52 55 1234 5678",
		Image:       "/images/barbershops/centro.jpg",
		ServiceIDs: []string{
			"corte-desvanecido", "corte-normal", "corte-tijera",
			"arreglo-barba", "barba-pigmento", "rasurado-barba",
			"ritual-barba-premium", "facial-premium", "facial-basico",
			"delineado-ceja",
		},
		PackageIDs: []string{
			"paquete-ejecutivo-1", "paquete-ejecutivo-2",
			"paquete-buchon-1", "paquete-lion-king",
		},
		ProductIDs: []string{"pomada-mate", "cera-clasica", "shampoo-keratina", "aceite-barba"},
		BarberIDs:  []string{"leon-rivera-jr", "pablo-gomez", "juan-jose"},
		Hours:      standardHours,
	},
	{
		ID:          "barberweb-norte",
		Name:        "BarberWeb Norte",
		Description: "Sucursal norte con enfoque en cortes y barba.",
		Address:     "Blvd. del Norte 456, Col. Industrial, CP 54321",
		Phone:       "+52 55 8765 4321",
		Image:       "/images/barbershops/norte.jpg",
		ServiceIDs: []string{
			"corte-desvanecido", "corte-normal",
			"arreglo-barba", "rasurado-barba", "ritual-barba-premium",
		},
		PackageIDs: []string{"paquete-ejecutivo-1", "paquete-buchon-1"},
		ProductIDs: []string{"pomada-mate", "cera-clasica"},
		BarberIDs:  []string{"pablo-gomez", "juan-jose"},
		Hours:      standardHours,
	},
	{
		ID:          "barberweb-sur",
		Name:        "BarberWeb Sur",
		Description: "Sucursal sur, especializada en tratamientos y faciales.",
		Address:     "Calz. del Sur 789, Col. Jardines, CP 67890",
		Phone:       "+52 55 2468 1357",
		Image:       "/images/barbershops/sur.jpg",
		ServiceIDs: []string{
			"corte-normal", "corte-tijera",
			"facial-premium", "facial-basico", "delineado-ceja",
		},
		PackageIDs: []string{"paquete-ejecutivo-2", "paquete-lion-king"},
		ProductIDs: []string{"shampoo-keratina", "aceite-barba"},
		BarberIDs:  []string{"leon-rivera-jr"},
		Hours:      standardHours,
	},
}
