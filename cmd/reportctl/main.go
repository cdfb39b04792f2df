// reportctl exporta relatórios do dashboard direto do banco, sem passar pela API.
package main

func main() {
	Execute()
}
