package math

import (
	"unsafe"

	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/poly"
)

// =============================================================================
// Coefficient tables
// =============================================================================
//
// Each table is fitted separately per precision on the interval of its
// kernel. Rational tables store the numerator first, then the denominator
// without its unit constant term (see poly.Rational).

// exp2wcTable: 2^x on [0, 1], polynomial.
var exp2wcTable = poly.Table{
	F32: []float32{
		1.0,
		0.6931471824645996,
		0.24022722244262695,
		0.055495936423540115,
		0.009652440436184406,
		0.0012689351569861174,
		0.0002082919527310878,
	},
	F64: []float64{
		1.0,
		0.693147180559945,
		0.24022650695913042,
		0.055504108664215755,
		0.009618129115689733,
		0.0013333557474304314,
		0.00015403565147664722,
		1.5251597471888089e-05,
		1.3239302461443003e-06,
		9.859795682132245e-08,
		9.674113243818284e-09,
		-7.654307410120963e-10,
		2.6775524020195005e-10,
	},
}

// expm1wcTable: e^x - 1 on [-ln2/2, ln2/2], Padé rational.
var expm1wcTable = poly.Table{
	F32: []float32{
		0, 1, 0, 1.0 / 60,
		-1.0 / 2, 1.0 / 10, -1.0 / 120,
	},
	M32: 3,
	F64: []float64{
		0, 1, 0, 1.0 / 33, 0, 1.0 / 7920,
		-1.0 / 2, 5.0 / 44, -1.0 / 66, 1.0 / 792, -1.0 / 15840, 1.0 / 665280,
	},
	M64: 5,
}

// log2wcTable: log2((1+s)/(1-s)) / s as a rational in s^2, |s| <= 1/3.
var log2wcTable = poly.Table{
	F32: []float32{
		2.885390043258667, -2.244192361831665, 0.19541266560554504,
		-1.1111111640930176, 0.2380952388048172,
	},
	M32: 2,
	F64: []float64{
		2.8853900817779268,
		-6.595177329778118,
		5.217325223893187,
		-1.6607051274157492,
		0.1815585974949668,
		-0.003094468465002624,
		-2.619047619047619,
		2.481203007518797,
		-1.021671826625387,
		0.17027863777089783,
		-0.007859014050964515,
	},
	M64: 5,
}

// sinwcTable: sin(x)/x as a polynomial in x^2 on [-pi/4, pi/4].
var sinwcTable = poly.Table{
	F32: []float32{
		1,
		-1.66666666666666324348e-01,
		8.33333333332248946124e-03,
		-1.98412698298579493134e-04,
		2.75573137070700676789e-06,
	},
	F64: []float64{
		1,
		-1.66666666666666324348e-01,
		8.33333333332248946124e-03,
		-1.98412698298579493134e-04,
		2.75573137070700676789e-06,
		-2.50507602534068634195e-08,
		1.58969099521155010221e-10,
	},
}

// coswcTable: cos(x) as a polynomial in x^2 on [-pi/4, pi/4].
var coswcTable = poly.Table{
	F32: []float32{
		1,
		-0.5,
		4.16666666666666019037e-02,
		-1.38888888888741095749e-03,
		2.48015872894767294178e-05,
		-2.75573143513906633035e-07,
	},
	F64: []float64{
		1,
		-0.5,
		4.16666666666666019037e-02,
		-1.38888888888741095749e-03,
		2.48015872894767294178e-05,
		-2.75573143513906633035e-07,
		2.08757232129817482790e-09,
		-1.13596475577881948265e-11,
	},
}

// atanwc0Table: atan(x)/x as a rational in x^2 on [0, 1/2].
var atanwc0Table = poly.Table{
	F32: []float32{
		1.0, 1.0303030014038086, 0.20000000298023224,
		1.3636363744735718, 0.4545454680919647, 0.021645022556185722,
	},
	M32: 2,
	F64: []float64{
		1.0,
		2.7866666666666666,
		2.8904347826086956,
		1.3693416149068323,
		0.28994079401402056,
		0.02213105421074192,
		0.0002685815488923002,
		3.12,
		3.7304347826086954,
		2.1316770186335403,
		0.5890160183066362,
		0.0692960021537219,
		0.0023098667384573966,
	},
	M64: 6,
}

// atanwc1Table: (atan(x) - pi/4)/t as a rational in t^2, t = (x-1)/(x+1),
// for x in [1/2, 3/2].
var atanwc1Table = poly.Table{
	F32: []float32{
		1.0, 0.7777777910232544, 0.06772486865520477,
		1.1111111640930176, 0.2380952388048172,
	},
	M32: 2,
	F64: []float64{
		1.0,
		1.9824561403508771,
		1.267079463364293,
		0.2794338788146838,
		0.012386925080423532,
		-0.00022521681964406422,
		2.3157894736842106,
		1.8390092879256965,
		0.5721362229102167,
		0.05501309835675161,
	},
	M64: 5,
}

// erfwcTable: erf(x)/x as a rational in x^2 on [-1, 1].
var erfwcTable = poly.Table{
	F32: []float32{
		1.128379225730896, 0.09806318581104279, 0.032213952392339706, -0.0002272718702442944,
		0.42023956775665283, 0.06862872838973999, 0.004460395313799381,
	},
	M32: 3,
	F64: []float64{
		1.1283791670955126,
		0.10694824835143422,
		0.04458577212591588,
		0.0008073664081544666,
		0.0002694387805718546,
		-3.652480345841809e-06,
		2.9798650465486267e-07,
		-4.864781200161973e-09,
		0.4281137506523829,
		0.08221769530088201,
		0.009119557027525423,
		0.0006204216242370296,
		2.474640543343387e-05,
		4.56547127112146e-07,
	},
	M64: 7,
}

// erfcwcTable: x*e^(x^2)*erfc(x) as a polynomial in z = (x-5)/(x+3),
// for x in [1, inf).
var erfcwcTable = poly.Table{
	F32: []float32{
		0.5535231828689575,
		0.03232552856206894,
		-0.039952896535396576,
		0.029185891151428223,
		-0.015783337876200676,
		0.006500935647636652,
		-0.0019350632792338729,
		0.00031616014894098043,
		3.4674954804359004e-05,
		-2.551147736085113e-05,
	},
	F64: []float64{
		0.5535231886653434,
		0.032325511271499865,
		-0.03995258281757147,
		0.029186202095285253,
		-0.015785901748222708,
		0.006499181795169306,
		-0.001927563134496646,
		0.00032022234590085575,
		2.5338994992551987e-05,
		-2.96825356013386e-05,
		4.724269668798797e-06,
		1.6380333562437955e-06,
		-6.953960081546029e-07,
		-7.123903742467518e-08,
		7.868920874898322e-08,
		1.910757418954745e-09,
		-8.295046427519992e-09,
		1.864464138634503e-11,
		6.239133654162288e-10,
	},
}

// =============================================================================
// Split constants
// =============================================================================

// hilo is a constant carried as an unevaluated sum hi + lo, per precision.
type hilo struct {
	hi32, lo32 float32
	hi64, lo64 float64
}

var (
	log2eSplit   = hilo{1.4426950216293335, 1.925963033500011e-08, 1.4426950408889634, 2.0355273740931033e-17}
	log2_10Split = hilo{3.321928024291992, 7.059536955011936e-08, 3.321928094887362, 1.661617516973592e-16}
	ln2Split     = hilo{0.6931471824645996, -1.9046542121259336e-09, 0.6931471805599453, 2.3190468138462996e-17}
	log10_2Split = hilo{0.3010300099849701, -1.432098883924482e-08, 0.3010299956639812, -2.8037281277851704e-18}

	pio4Split  = hilo{0.7853981852531433, -2.1855694143368964e-08, 0.7853981633974483, 3.061616997868383e-17}
	pio2Split  = hilo{1.5707963705062866, -4.371138828673793e-08, 1.5707963267948966, 6.123233995736766e-17}
	piSplit    = hilo{3.1415927410125732, -8.742277657347586e-08, 3.141592653589793, 1.2246467991473532e-16}
	pi3o2Split = hilo{4.71238899230957, -1.1924880638503055e-08, 4.71238898038469, 1.8369701987210297e-16}
	pi2Split   = hilo{6.2831854820251465, -1.7484555314695172e-07, 6.283185307179586, 2.4492935982947064e-16}
)

// pair returns the constant as two lane groups.
func pair[T jbm.Floats](c hilo) (hi, lo jbm.Vec[T]) {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return jbm.Set(T(c.hi32)), jbm.Set(T(c.lo32))
	}
	return jbm.Set(T(c.hi64)), jbm.Set(T(c.lo64))
}

// value returns the constant rounded to T.
func value[T jbm.Floats](c hilo) jbm.Vec[T] {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return jbm.Set(T(c.hi32))
	}
	return jbm.Set(T(c.hi64))
}

// pick returns v32 for float32 lanes and v64 for float64 lanes.
func pick[T jbm.Floats](v32, v64 float64) jbm.Vec[T] {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return jbm.Const[T](v32)
	}
	return jbm.Const[T](v64)
}

// Thresholds that differ per precision.
const (
	// erfcCutoff: erfc(x) underflows to zero beyond this point.
	erfcCutoff32 = 9.3
	erfcCutoff64 = 26.6

	// tanhClamp: tanh(x) rounds to 1 beyond this point.
	tanhClamp32 = 9
	tanhClamp64 = 19

	// invLarge: above this point x^2 dominates 1 in the inverse
	// hyperbolic functions.
	invLarge32 = 4096
	invLarge64 = 268435456
)
