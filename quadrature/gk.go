package quadrature

import "math"

// Gauss–Kronrod node/weight pairs on [-1, 1] (QUADPACK d1mach-era values).
// Nodes are the positive abscissae in decreasing order; the rules are
// symmetric about zero. Odd-indexed Kronrod abscissae coincide with the
// embedded Gauss rule's nodes.

// 7-point Gauss / 15-point Kronrod.
var (
	xgk15 = [8]float64{
		0.991455371120812639206854697526329,
		0.949107912342758524526189684047851,
		0.864864423359769072789712788640926,
		0.741531185599394439863864773280788,
		0.586087235467691130294144838258730,
		0.405845151377397166906606412076961,
		0.207784955007898467600689403773245,
		0.000000000000000000000000000000000,
	}
	wgk15 = [8]float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
	}
	wg15 = [4]float64{
		0.129484966168869693270611432679082,
		0.279705391489276667901467771423780,
		0.381830050505118944950369775488975,
		0.417959183673469387755102040816327,
	}
)

// 10-point Gauss / 21-point Kronrod.
var (
	xgk21 = [11]float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0.000000000000000000000000000000000,
	}
	wgk21 = [11]float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077958109831074,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}
	wg21 = [5]float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

// finiteOrZero replaces non-finite integrand values with zero, so that
// evaluation exactly on an integrable endpoint singularity does not poison
// the sums. Matches the convention of singularity-tolerant quadrature
// libraries.
func finiteOrZero(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// gkSegment applies one Gauss–Kronrod pair to [a, b] and returns the
// Kronrod estimate, a conservative error bound, and the evaluation count.
//
// The error bound follows the QUADPACK model: the raw |Kronrod−Gauss|
// difference is rescaled against the integral of |f − mean|, which keeps
// the bound sharp for smooth integrands and pessimistic for rough ones.
func gkSegment(f Func, a, b float64, rule Rule) (value, errBound float64, evals int) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)

	var resk, resg, resabs float64 // Kronrod, Gauss, ∫|f|
	var fv []float64               // Kronrod-node values, mirrored pairs flattened

	switch rule {
	case GK15:
		fv = make([]float64, 0, 15)
		fc := finiteOrZero(f(center))
		resk = wgk15[7] * fc
		resg = wg15[3] * fc
		resabs = wgk15[7] * math.Abs(fc)
		fv = append(fv, fc)
		for j := 0; j < 7; j++ {
			dx := half * xgk15[j]
			f1 := finiteOrZero(f(center - dx))
			f2 := finiteOrZero(f(center + dx))
			resk += wgk15[j] * (f1 + f2)
			resabs += wgk15[j] * (math.Abs(f1) + math.Abs(f2))
			if j%2 == 1 { // Gauss nodes sit at the odd Kronrod indices
				resg += wg15[j/2] * (f1 + f2)
			}
			fv = append(fv, f1, f2)
		}
		evals = 15
	default: // GK21
		fv = make([]float64, 0, 21)
		fc := finiteOrZero(f(center))
		resk = wgk21[10] * fc
		resabs = wgk21[10] * math.Abs(fc)
		fv = append(fv, fc)
		for j := 0; j < 10; j++ {
			dx := half * xgk21[j]
			f1 := finiteOrZero(f(center - dx))
			f2 := finiteOrZero(f(center + dx))
			resk += wgk21[j] * (f1 + f2)
			resabs += wgk21[j] * (math.Abs(f1) + math.Abs(f2))
			if j%2 == 1 {
				resg += wg21[j/2] * (f1 + f2)
			}
			fv = append(fv, f1, f2)
		}
		evals = 21
	}

	// ∫|f − mean| on the segment, for error rescaling.
	mean := resk * 0.5
	var resasc float64
	switch rule {
	case GK15:
		resasc = wgk15[7] * math.Abs(fv[0]-mean)
		for j := 0; j < 7; j++ {
			resasc += wgk15[j] * (math.Abs(fv[1+2*j]-mean) + math.Abs(fv[2+2*j]-mean))
		}
	default:
		resasc = wgk21[10] * math.Abs(fv[0]-mean)
		for j := 0; j < 10; j++ {
			resasc += wgk21[j] * (math.Abs(fv[1+2*j]-mean) + math.Abs(fv[2+2*j]-mean))
		}
	}

	value = resk * half
	resabs *= math.Abs(half)
	resasc *= math.Abs(half)

	errBound = math.Abs((resk - resg) * half)
	if resasc != 0 && errBound != 0 {
		scaled := math.Pow(200*errBound/resasc, 1.5)
		if scaled < 1 {
			errBound = resasc * scaled
		} else {
			errBound = resasc
		}
	}
	// Round-off floor: the bound can never be trusted below machine noise
	// on the magnitude of ∫|f|.
	minErr := 50 * machEps * resabs
	if minErr > errBound {
		errBound = minErr
	}
	return value, errBound, evals
}

// machEps is the double-precision unit roundoff.
const machEps = 2.220446049250313e-16
