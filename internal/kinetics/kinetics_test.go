package kinetics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

var _ = Describe("ParameterSet", func() {
	It("validates the default set", func() {
		Expect(kinetics.DefaultParameters().Validate()).To(Succeed())
	})

	It("rejects non-positive constants", func() {
		p := kinetics.DefaultParameters()
		p.Xopt = 0
		Expect(p.Validate()).To(MatchError(ContainSubstring("x_opt")))

		p = kinetics.DefaultParameters()
		p.C2 = -1
		Expect(p.Validate()).To(MatchError(ContainSubstring("c2")))
	})

	It("computes the CO2 fixation factor from stoichiometry", func() {
		p := kinetics.DefaultParameters()
		Expect(p.FixationFactor()).To(BeNumerically("~", 1.90295, 1e-4))
	})
})

var _ = Describe("Capacity", func() {
	p := kinetics.DefaultParameters()

	It("equals a1*Xopt at the joint optimum", func() {
		xmax, err := kinetics.Capacity(kinetics.Environment{Light: p.IOpt1, DIC: p.DICOpt1}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(xmax).To(BeNumerically("~", p.A1*p.Xopt, 1e-12))
	})

	It("matches the hand-computed reference value at I=120, DIC=17.09", func() {
		xmax, err := kinetics.Capacity(kinetics.Environment{Light: 120, DIC: 17.09}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(xmax).To(BeNumerically("~", 2.151002, 1e-6))
	})

	It("is maximized at the light optimum for fixed DIC", func() {
		at := func(i float64) float64 {
			v, err := kinetics.Capacity(kinetics.Environment{Light: i, DIC: 17.09}, p)
			Expect(err).NotTo(HaveOccurred())
			return v
		}
		peak := at(p.IOpt1)
		for _, i := range []float64{50, 90, 119, 121, 180, 300} {
			Expect(at(i)).To(BeNumerically("<", peak))
		}
	})

	It("is maximized at the DIC optimum for fixed light", func() {
		at := func(dic float64) float64 {
			v, err := kinetics.Capacity(kinetics.Environment{Light: 120, DIC: dic}, p)
			Expect(err).NotTo(HaveOccurred())
			return v
		}
		peak := at(p.DICOpt1)
		for _, dic := range []float64{7, 12, 17, 17.2, 25, 30} {
			Expect(at(dic)).To(BeNumerically("<", peak))
		}
	})

	It("stays strictly positive and decays toward zero far from the optima", func() {
		near, err := kinetics.Capacity(kinetics.Environment{Light: 120, DIC: 17.09}, p)
		Expect(err).NotTo(HaveOccurred())
		far, err := kinetics.Capacity(kinetics.Environment{Light: 5000, DIC: 500}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(far).To(BeNumerically(">", 0))
		Expect(far).To(BeNumerically("<", near*1e-6))
	})

	It("handles zero light and zero DIC without failing", func() {
		xmax, err := kinetics.Capacity(kinetics.Environment{Light: 0, DIC: 0}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(xmax).To(BeNumerically(">", 0))
		Expect(math.IsNaN(xmax)).To(BeFalse())
	})

	It("rejects negative inputs", func() {
		_, err := kinetics.Capacity(kinetics.Environment{Light: -1, DIC: 17}, p)
		Expect(err).To(MatchError(growth.ErrInvalidInput))

		_, err = kinetics.Capacity(kinetics.Environment{Light: 120, DIC: -0.5}, p)
		Expect(err).To(MatchError(growth.ErrInvalidInput))
	})
})

var _ = Describe("MaxGrowthRate", func() {
	p := kinetics.DefaultParameters()

	It("equals a2*mu_opt at its own joint optimum", func() {
		mu, err := kinetics.MaxGrowthRate(kinetics.Environment{Light: p.IOpt2, DIC: p.DICOpt2}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(mu).To(BeNumerically("~", p.A2*p.MuOpt, 1e-12))
	})

	It("matches the hand-computed reference value at I=120, DIC=17.09", func() {
		mu, err := kinetics.MaxGrowthRate(kinetics.Environment{Light: 120, DIC: 17.09}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(mu).To(BeNumerically("~", 0.0748795, 1e-6))
	})

	It("uses its own optima, distinct from the capacity peak", func() {
		atCapOpt, err := kinetics.MaxGrowthRate(kinetics.Environment{Light: 120, DIC: p.DICOpt1}, p)
		Expect(err).NotTo(HaveOccurred())
		atOwnOpt, err := kinetics.MaxGrowthRate(kinetics.Environment{Light: 120, DIC: p.DICOpt2}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(atCapOpt).To(BeNumerically("<", atOwnOpt))
	})
})

var _ = Describe("DeriveCoefficients", func() {
	p := kinetics.DefaultParameters()

	It("returns both coefficients for a valid environment", func() {
		c, err := kinetics.DeriveCoefficients(kinetics.Environment{Light: 80, DIC: 10}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Xmax).To(BeNumerically(">", 0))
		Expect(c.MuMax).To(BeNumerically(">", 0))
		Expect(c.Xmax).To(BeNumerically("<", p.A1*p.Xopt))
	})

	It("fails with an invalid-state error on non-finite inputs", func() {
		_, err := kinetics.DeriveCoefficients(kinetics.Environment{Light: math.NaN(), DIC: 17}, p)
		Expect(err).To(MatchError(growth.ErrInvalidModelState))
	})
})

var _ = Describe("Logistic", func() {
	c := kinetics.Coefficients{Xmax: 2.0, MuMax: 0.1}

	It("has dX/dt = 0 at carrying capacity", func() {
		l := kinetics.NewLogistic(c)
		dx := l.Derive(growth.State{2.0}, 0)
		Expect(dx[0]).To(BeNumerically("~", 0, 1e-15))
	})

	It("grows below capacity and shrinks above it", func() {
		l := kinetics.NewLogistic(c)
		Expect(l.Derive(growth.State{0.5}, 0)[0]).To(BeNumerically(">", 0))
		Expect(l.Derive(growth.State{3.0}, 0)[0]).To(BeNumerically("<", 0))
	})

	It("clamps to the floor so X=0 is not a sticky fixed point", func() {
		l := kinetics.NewLogistic(c)
		dx := l.Derive(growth.State{0}, 0)
		Expect(dx[0]).To(BeNumerically(">", 0))
	})

	It("exposes its coefficients via Configurable", func() {
		l := kinetics.NewLogistic(c)
		params := l.GetParams()
		Expect(params["mu_max"]).To(Equal(0.1))
		Expect(params["x_max"]).To(Equal(2.0))

		Expect(l.SetParam("mu_max", 0.2)).To(Succeed())
		Expect(l.GetParams()["mu_max"]).To(Equal(0.2))
		Expect(l.SetParam("x_max", -1)).NotTo(Succeed())
		Expect(l.SetParam("bogus", 1)).NotTo(Succeed())
	})

	It("agrees with the closed-form solution in slope", func() {
		l := kinetics.NewLogistic(c)
		x0 := 0.05
		h := 1e-6
		numeric := (l.Exact(x0, h) - l.Exact(x0, 0)) / h
		analytic := l.Derive(growth.State{x0}, 0)[0]
		Expect(numeric).To(BeNumerically("~", analytic, 1e-6))
	})
})
