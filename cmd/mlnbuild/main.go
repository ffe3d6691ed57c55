package main

import "github.com/acalcutt/maplibre-native-from-source/cmd/mlnbuild/internal"

func main() {
	internal.Execute()
}
