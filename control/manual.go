package control

// manualTick copies the operator-set commanded gate bits straight
// through to the gate array.
func manualTick(in *Inputs) {
	in.Board.Gate.Floating = [3]bool{false, false, false}
	in.Board.Gate.Commanded = in.ManualCommanded
}
