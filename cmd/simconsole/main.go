// Command simconsole is a headless operator console: a line-oriented
// REPL that drives the scheduler and dumps CSV, so the core can be
// exercised without a graphics front-end.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"motorsim/control"
	"motorsim/motor"
	"motorsim/observer"
	"motorsim/sim"
)

func main() {
	params := motor.NewParams(4, 0.01, 0.1, 1e-4, 0.05)
	state := sim.New(params, 24, 1e-6, 0.7, 20e3, 1e-4)
	state.StepMultiplier = 1
	sched := sim.NewScheduler(state, 1e-6, 10000)

	fmt.Println("simconsole: type commands, 'help' for a list, 'quit' to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tokens, err := shlex.Split(scanner.Text())
		if err != nil || len(tokens) == 0 {
			continue
		}
		if !runCommand(tokens, state, sched) {
			break
		}
	}
}

func runCommand(tokens []string, state *sim.State, sched *sim.Scheduler) bool {
	switch tokens[0] {
	case "quit", "exit":
		return false
	case "help":
		fmt.Println("mode manual|sixstep|foc | set bus_voltage V | set load_torque T | set foc_torque T | run N | dump file.csv")
	case "mode":
		if len(tokens) < 2 {
			break
		}
		switch tokens[1] {
		case "manual":
			state.Mode = control.ModeManual
		case "sixstep":
			state.Mode = control.ModeSixStep
		case "foc":
			state.Mode = control.ModeFOC
		default:
			fmt.Println("unknown mode:", tokens[1])
		}
	case "set":
		handleSet(tokens, state)
	case "run":
		if len(tokens) < 2 {
			break
		}
		n, err := strconv.Atoi(tokens[1])
		if err != nil {
			fmt.Println("bad tick count:", tokens[1])
			break
		}
		for i := 0; i < n; i++ {
			sched.Tick()
		}
	case "dump":
		if len(tokens) < 2 {
			break
		}
		f, err := os.Create(tokens[1])
		if err != nil {
			fmt.Println("dump:", err)
			break
		}
		defer f.Close()
		if err := observer.WriteCSV(f, sched.Samples); err != nil {
			fmt.Println("dump:", err)
		}
	default:
		fmt.Println("unknown command:", tokens[0])
	}
	return true
}

func handleSet(tokens []string, state *sim.State) {
	if len(tokens) < 3 {
		fmt.Println("usage: set <field> <value>")
		return
	}
	value, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		fmt.Println("bad value:", tokens[2])
		return
	}
	switch tokens[1] {
	case "bus_voltage":
		if err := state.Board.SetBusVoltage(value); err != nil {
			fmt.Println(err)
		}
	case "load_torque":
		state.LoadTorque = value
	case "foc_torque":
		state.Foc.DesiredTorque = value
	case "six_step_phase_advance":
		state.SixStep.SetPhaseAdvance(value)
	default:
		fmt.Println("unknown field:", tokens[1])
	}
}
