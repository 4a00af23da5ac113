// Command sdbtool inspects Windows shim databases (.sdb files).
//
// Usage:
//
//	sdbtool sdb2xml sysmain.sdb --output sysmain.xml --exclude auto
//	sdbtool info sysmain.sdb --json
package main

func main() {
	execute()
}
