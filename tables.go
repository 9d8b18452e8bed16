package propertycurve

import "math"

// DomainMin is the lowest temperature, in Kelvin, covered by the built-in fits.
const DomainMin = 273

var inf = math.Inf(1)

// Specific heat capacity cp(T).
var cpCurve = MustCurve(string(Cp), DomainMin,
	Segment{
		Lower:          273,
		Upper:          600,
		Value:          Polynomial{398.18776737, -0.02021752, 0.00057432},
		Antiderivative: Polynomial{0, 398.18776737, -0.02021752 / 2, 0.00057432 / 3},
	},
	Segment{
		Lower:          600,
		Upper:          700,
		Value:          Polynomial{1008.8601127, -0.69177032},
		Antiderivative: Polynomial{0, 1008.8601127, -0.69177032 / 2},
	},
	Segment{
		Lower:          700,
		Upper:          inf,
		Value:          Polynomial{497.38204089, -3.70561459e-03, 5.60806832e-05},
		Antiderivative: Polynomial{0, 497.38204089, -3.70561459e-03 / 2, 5.60806832e-05 / 3},
	},
)

// Thermal expansion coefficient beta(T). The fits are in units of 1e-6.
var betaCurve = MustCurve(string(Beta), DomainMin,
	Segment{
		Lower:          273,
		Upper:          631,
		Value:          Polynomial{46.29391086e-6, -1.80692616e-8, -6.04268663e-11, 1.76344163e-13},
		Antiderivative: Polynomial{0, 46.29391086e-6, -1.80692616e-8 / 2, -6.04268663e-11 / 3, 1.76344163e-13 / 4},
	},
	Segment{
		Lower:          631,
		Upper:          688,
		Value:          Polynomial{125.72851444e-6, -0.11184634e-6},
		Antiderivative: Polynomial{0, 125.72851444e-6, -0.11184634e-6 / 2},
	},
	Segment{
		Lower:          688,
		Upper:          inf,
		Value:          Polynomial{48.50056087e-6, -1.60505423e-8, 2.33002672e-11},
		Antiderivative: Polynomial{0, 48.50056087e-6, -1.60505423e-8 / 2, 2.33002672e-11 / 3},
	},
)

// (1 + beta) * cp, refitted on the union of both threshold sets.
var betaCpCurve = MustCurve(string(BetaCp), DomainMin,
	Segment{
		Lower:          273,
		Upper:          600,
		Value:          Polynomial{398.206, -0.0202257, 0.000574323, 6.10622e-11, -3.82696e-14, 1.01278e-16},
		Antiderivative: Polynomial{0, 398.206, -0.0202257 / 2, 0.000574323 / 3, 6.10622e-11 / 4, -3.82696e-14 / 5, 1.01278e-16 / 6},
	},
	Segment{
		Lower:          600,
		Upper:          631,
		Value:          Polynomial{1008.91, -0.691821, -4.84625e-8, 2.19708e-10, -1.2199e-13},
		Antiderivative: Polynomial{0, 1008.91, -0.691821 / 2, -4.84625e-8 / 3, 2.19708e-10 / 4, -1.2199e-13 / 5},
	},
	Segment{
		Lower:          631,
		Upper:          688,
		Value:          Polynomial{1008.99, -0.69197, 7.7372e-8},
		Antiderivative: Polynomial{0, 1008.99, -0.69197 / 2, 7.7372e-8 / 3},
	},
	Segment{
		Lower:          688,
		Upper:          700,
		Value:          Polynomial{1008.91, -0.69182, 3.461e-8, -1.61184e-11},
		Antiderivative: Polynomial{0, 1008.91, -0.69182 / 2, 3.461e-8 / 3, -1.61184e-11 / 4},
	},
	Segment{
		Lower:          700,
		Upper:          inf,
		Value:          Polynomial{497.406, -0.00371378, 0.0000560951, -9.86467e-13, 1.30669e-15},
		Antiderivative: Polynomial{0, 497.406, -0.00371378 / 2, 0.0000560951 / 3, -9.86467e-13 / 4, 1.30669e-15 / 5},
	},
)

// Density ratio rho_r(T).
var rhoRCurve = MustCurve(string(RhoR), DomainMin,
	Segment{
		Lower:          273,
		Upper:          630,
		Value:          Polynomial{-21.631256, 1.65854877e-01, -3.42786503e-04, 3.29913578e-07},
		Antiderivative: Polynomial{0, -21.631256, 1.65854877e-01 / 2, -3.42786503e-04 / 3, 3.29913578e-07 / 4},
	},
	Segment{
		Lower:          630,
		Upper:          inf,
		Value:          Polynomial{-3.57260069, 6.24155480e-02, -1.68017495e-05, -2.74364233e-10},
		Antiderivative: Polynomial{0, -3.57260069, 6.24155480e-02 / 2, -1.68017495e-05 / 3, -2.74364233e-10 / 4},
	},
)
