// Command tbdemo runs the traceback demo programs.
package main

func main() {
	Execute()
}
