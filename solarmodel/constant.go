package solarmodel

// ConstantModel is a radius- and energy-independent rate model:
// Γ(E, r) ≡ Value over [Lo, Hi] at uniform temperature Temp. With
// Value = 1 over [0, 1] the radial integral has the closed form
// 0.5·(E/π)²·∫ r² dr = 0.5·(E/π)²/3, which anchors the engine's unit and
// kernel conventions in tests.
type ConstantModel struct {
	Value   float64
	Lo, Hi  float64
	TempKeV float64
}

// UnitModel returns Γ ≡ 1 over the full normalized radius at 1 keV.
func UnitModel() ConstantModel {
	return ConstantModel{Value: 1, Lo: 0, Hi: 1, TempKeV: 1}
}

func (c ConstantModel) Rate(energy, radius float64) float64 { return c.Value }
func (c ConstantModel) Temperature(radius float64) float64  { return c.TempKeV }
func (c ConstantModel) RLo() float64                        { return c.Lo }
func (c ConstantModel) RHi() float64                        { return c.Hi }
