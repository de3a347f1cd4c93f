package rvjitter_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/rvjitter"
	"github.com/arloliu/rvjitter/errs"
)

// Luminosity, mass and temperature select the LMT relation.
func Example() {
	table, err := rvjitter.LoadTable("testdata/fitparamsrms.csv")
	if err != nil {
		log.Fatal(err)
	}

	target, err := rvjitter.New(table,
		rvjitter.WithLuminosity(12.006, 1.131),
		rvjitter.WithMass(1.304, 0.064),
		rvjitter.WithTeff(4963.00, 80.000),
	)
	if err != nil {
		log.Fatal(err)
	}

	est, err := target.RV()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(est.Model, est.Branch, est.Median > 0)
	// Output: LMT Dwarf true
}

// Luminosity, temperature and gravity select the LTg relation.
func ExampleNew_luminosityTemperatureGravity() {
	table, _ := rvjitter.LoadTable("testdata/fitparamsrms.csv")

	target, err := rvjitter.New(table,
		rvjitter.WithLuminosity(12.006, 1.131),
		rvjitter.WithTeff(4963.00, 80.000),
		rvjitter.WithLogG(3.210, 0.006),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(target.Model(), target.Config().CorrectionFactor)
	// Output: LTg 1.93
}

// Temperature and gravity alone select the Tg relation.
func ExampleNew_temperatureGravity() {
	table, _ := rvjitter.LoadTable("testdata/fitparamsrms.csv")

	target, err := rvjitter.New(table,
		rvjitter.WithTeff(4963.00, 80.000),
		rvjitter.WithLogG(3.210, 0.006),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(target.Model(), target.Config().CorrectionFactor)
	// Output: Tg 2.01
}

// Without gravity or mass, the giant flag picks the branch for the LT relation.
func ExampleNew_luminosityTemperature() {
	table, _ := rvjitter.LoadTable("testdata/fitparamsrms.csv")

	target, err := rvjitter.New(table,
		rvjitter.WithLuminosity(12.006, 1.131),
		rvjitter.WithTeff(4963.00, 80.000),
		rvjitter.WithGiant(false),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(target.Model(), target.Branch())
	// Output: LT Dwarf
}

func ExampleNew_insufficientInputs() {
	table, _ := rvjitter.LoadTable("testdata/fitparamsrms.csv")

	_, err := rvjitter.New(table,
		rvjitter.WithLuminosity(12.006, 1.131),
		rvjitter.WithTeff(4963.00, 80.000),
	)
	fmt.Println(errors.Is(err, errs.ErrInsufficientInputs))
	// Output: true
}

func ExampleTarget_RV_histogram() {
	table, _ := rvjitter.LoadTable("testdata/fitparamsrms.csv")

	est, err := rvjitter.Estimate(table,
		rvjitter.WithTeff(4963.00, 80.000),
		rvjitter.WithLogG(3.210, 0.006),
		rvjitter.WithSampleSize(10000),
	)
	if err != nil {
		log.Fatal(err)
	}

	h, err := est.Histogram(99)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(h.Edges), len(h.Density))
	// Output: 100 99
}
