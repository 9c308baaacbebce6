// Package catalog holds the demo flight table the service starts with.
package catalog

import "github.com/Domenick1991/skybooking/internal/domain"

// Flights returns a fresh copy of the seed table.
func Flights() []domain.Flight {
	out := make([]domain.Flight, 0, len(seed))
	for _, f := range seed {
		out = append(out, f.Clone())
	}
	return out
}

var seed = []domain.Flight{
	{
		ID: 1, Code: "SH-OTP-CDG-01", FlightNumber: "SH101",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "Paris", ArrivalCode: "CDG",
		DepartureTime: "06:30", ArrivalTime: "08:45", StartDate: "2026-11-02", Frequency: domain.FrequencyDaily,
		Duration: "3h 15m", Aircraft: "Airbus A320", SeatConfiguration: "3-3, 180 seats", Meal: "snack",
		Price: 129, Status: domain.FlightStatusActive,
	},
	{
		ID: 2, Code: "SH-CDG-OTP-01", FlightNumber: "SH102",
		DepartureCity: "Paris", DepartureCode: "CDG", ArrivalCity: "Bucharest", ArrivalCode: "OTP",
		DepartureTime: "10:15", ArrivalTime: "14:20", StartDate: "2026-11-02", Frequency: domain.FrequencyDaily,
		Duration: "3h 05m", Aircraft: "Airbus A320", SeatConfiguration: "3-3, 180 seats", Meal: "snack",
		Price: 135, Status: domain.FlightStatusActive,
	},
	{
		ID: 3, Code: "SH-OTP-FCO-01", FlightNumber: "SH215",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "Rome", ArrivalCode: "FCO",
		DepartureTime: "07:10", ArrivalTime: "08:40", StartDate: "2026-11-05", Frequency: domain.FrequencyWeekly,
		Duration: "2h 30m", Aircraft: "Boeing 737-800", SeatConfiguration: "3-3, 189 seats", Meal: "none",
		Price: 89, Status: domain.FlightStatusActive,
	},
	{
		ID: 4, Code: "SH-MAD-AMS-01", FlightNumber: "SH330",
		DepartureCity: "Madrid", DepartureCode: "MAD", ArrivalCity: "Amsterdam", ArrivalCode: "AMS",
		DepartureTime: "09:00", ArrivalTime: "11:35", StartDate: "2026-11-07", Frequency: domain.FrequencyWeekly,
		Duration: "2h 35m", Aircraft: "Embraer E190", SeatConfiguration: "2-2, 100 seats", Meal: "snack",
		Price: 110, Status: domain.FlightStatusActive,
	},
	{
		ID: 5, Code: "SH-BER-VIE-01", FlightNumber: "SH412",
		DepartureCity: "Berlin", DepartureCode: "BER", ArrivalCity: "Vienna", ArrivalCode: "VIE",
		DepartureTime: "13:00", ArrivalTime: "14:15", StartDate: "2026-09-14", Frequency: domain.FrequencyDaily,
		Duration: "1h 15m", Aircraft: "Airbus A220", SeatConfiguration: "2-3, 130 seats", Meal: "none",
		Price: 75, Status: domain.FlightStatusCompleted,
	},
	{
		ID: 6, Code: "SH-OTP-JFK-01", FlightNumber: "SH900",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "New York", ArrivalCode: "JFK",
		DepartureTime: "11:00", ArrivalTime: "15:30", StartDate: "2026-11-03", Frequency: domain.FrequencyWeekly,
		Duration: "11h 30m", Aircraft: "Boeing 787-9", SeatConfiguration: "3-3-3, 290 seats", Meal: "full",
		Price: 640, Status: domain.FlightStatusActive,
	},
	{
		ID: 7, Code: "SH-IST-DXB-01", FlightNumber: "SH518",
		DepartureCity: "Istanbul", DepartureCode: "IST", ArrivalCity: "Dubai", ArrivalCode: "DXB",
		DepartureTime: "22:40", ArrivalTime: "03:55", StartDate: "2026-11-10", Frequency: domain.FrequencyDaily,
		Duration: "4h 15m", Aircraft: "Airbus A321neo", SeatConfiguration: "3-3, 220 seats", Meal: "full",
		Price: 310, Status: domain.FlightStatusCancelled,
	},
	{
		ID: 8, Code: "SH-OTP-LHR-01", FlightNumber: "SH250",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "London", ArrivalCode: "LHR",
		DepartureTime: "08:00", ArrivalTime: "11:00", StartDate: "2026-11-04", Frequency: domain.FrequencyDaily,
		Duration: "3h 00m", Aircraft: "Airbus A320", SeatConfiguration: "3-3, 180 seats", Meal: "snack",
		Price: 160, Status: domain.FlightStatusActive,
	},
	{
		ID: 9, Code: "SH-LHR-JFK-01", FlightNumber: "SH251",
		DepartureCity: "London", DepartureCode: "LHR", ArrivalCity: "New York", ArrivalCode: "JFK",
		DepartureTime: "01:00", ArrivalTime: "08:00", StartDate: "2026-11-05", Frequency: domain.FrequencyDaily,
		Duration: "7h 00m", Aircraft: "Boeing 777-300ER", SeatConfiguration: "3-4-3, 396 seats", Meal: "full",
		Price: 420, Status: domain.FlightStatusActive,
	},
	{
		ID: 10, Code: "SH-OTP-JFK-03", FlightNumber: "SH252",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "New York", ArrivalCode: "JFK",
		DepartureTime: "08:00", ArrivalTime: "20:00", StartDate: "2026-11-04", Frequency: domain.FrequencyDaily,
		Duration: "24h 00m", Aircraft: "Airbus A320 / Boeing 777-300ER", SeatConfiguration: "mixed", Meal: "full",
		Price: 540, Status: domain.FlightStatusActive, LegBoundaryIDs: []int64{8, 9},
	},
	{
		ID: 11, Code: "SH-FRA-DXB-01", FlightNumber: "SH731",
		DepartureCity: "Frankfurt", DepartureCode: "FRA", ArrivalCity: "Dubai", ArrivalCode: "DXB",
		DepartureTime: "14:20", ArrivalTime: "22:45", StartDate: "2026-11-06", Frequency: domain.FrequencyDaily,
		Duration: "6h 25m", Aircraft: "Airbus A350-900", SeatConfiguration: "3-3-3, 300 seats", Meal: "full",
		Price: 380, Status: domain.FlightStatusActive,
	},
	{
		ID: 12, Code: "SH-OTP-FRA-01", FlightNumber: "SH730",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "Frankfurt", ArrivalCode: "FRA",
		DepartureTime: "06:00", ArrivalTime: "07:40", StartDate: "2026-11-06", Frequency: domain.FrequencyDaily,
		Duration: "2h 40m", Aircraft: "Airbus A321", SeatConfiguration: "3-3, 200 seats", Meal: "snack",
		Price: 140, Status: domain.FlightStatusActive,
	},
	{
		ID: 13, Code: "SH-OTP-DXB-01", FlightNumber: "SH732",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "Dubai", ArrivalCode: "DXB",
		DepartureTime: "06:00", ArrivalTime: "22:45", StartDate: "2026-11-06", Frequency: domain.FrequencyDaily,
		Duration: "15h 45m", Aircraft: "Airbus A321 / Airbus A350-900", SeatConfiguration: "mixed", Meal: "full",
		Price: 470, Status: domain.FlightStatusActive, LegBoundaryIDs: []int64{12, 11},
	},
	{
		ID: 14, Code: "SH-OTP-JFK-02", FlightNumber: "SH260",
		DepartureCity: "Bucharest", DepartureCode: "OTP", ArrivalCity: "New York", ArrivalCode: "JFK",
		DepartureTime: "09:30", ArrivalTime: "21:10", StartDate: "2026-11-08", Frequency: domain.FrequencyWeekly,
		Duration: "18h 40m", Aircraft: "Airbus A320", SeatConfiguration: "3-3, 180 seats", Meal: "full",
		Price: 495, Status: domain.FlightStatusActive, LegBoundaryIDs: []int64{8},
	},
	{
		ID: 15, Code: "SH-AMS-MAD-01", FlightNumber: "SH331",
		DepartureCity: "Amsterdam", DepartureCode: "AMS", ArrivalCity: "Madrid", ArrivalCode: "MAD",
		DepartureTime: "17:05", ArrivalTime: "19:40", StartDate: "2026-11-07", Frequency: domain.FrequencyWeekly,
		Duration: "2h 35m", Aircraft: "Embraer E190", SeatConfiguration: "2-2, 100 seats", Meal: "snack",
		Price: 115, Status: domain.FlightStatusActive,
	},
}
