package domain

// Snapshot é uma foto imutável das coleções do domínio usada em uma passada
// de cálculo. O chamador é dono das fatias e não deve mutá-las durante o
// cálculo; cada invocação do pipeline recebe o snapshot como argumento
// explícito, sem estado compartilhado.
type Snapshot struct {
	Orders    []Order
	Clients   []Client
	Meetings  []Meeting
	Campaigns []Campaign
}
