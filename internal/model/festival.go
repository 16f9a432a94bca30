package model

type Festival string

const (
	FestivalDiwali          Festival = "Diwali"
	FestivalHoli            Festival = "Holi"
	FestivalGaneshChaturthi Festival = "Ganesh Chaturthi"
	FestivalDurgaPuja       Festival = "Durga Puja"
	FestivalNavratri        Festival = "Navratri"
	FestivalChristmas       Festival = "Christmas"
)

// Festivals lists every festival in display order.
func Festivals() []Festival {
	return []Festival{
		FestivalDiwali,
		FestivalHoli,
		FestivalGaneshChaturthi,
		FestivalDurgaPuja,
		FestivalNavratri,
		FestivalChristmas,
	}
}

func (f Festival) Valid() bool {
	for _, known := range Festivals() {
		if f == known {
			return true
		}
	}
	return false
}

// Parameter is an environmental parameter captured by the add-audit form.
type Parameter string

const (
	ParameterFoodWastage       Parameter = "Food Wastage"
	ParameterAirPollution      Parameter = "Air Pollution"
	ParameterSoundPollution    Parameter = "Sound Pollution"
	ParameterWaterWastage      Parameter = "Water Wastage"
	ParameterPlasticUsage      Parameter = "Plastic Usage"
	ParameterEnergyConsumption Parameter = "Energy Consumption"
)

func Parameters() []Parameter {
	return []Parameter{
		ParameterFoodWastage,
		ParameterAirPollution,
		ParameterSoundPollution,
		ParameterWaterWastage,
		ParameterPlasticUsage,
		ParameterEnergyConsumption,
	}
}
