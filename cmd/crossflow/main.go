// Crossflow is the command-line interface for running batch cross-flow
// membrane filtration simulations.
package main

func main() {
	Execute()
}
