package equipment

import "sort"

// catalog maps manufacturer to known model names. Purely static reference
// data; the wizard also accepts freely typed manufacturer/model pairs.
var catalog = map[string][]string{
	"DIMEP": {
		"Compact Gate",
		"New BAP",
		"BAP Fancy Line II V2",
		"BAP Black",
		"Face Access Ultra",
		"CM3 Controlador de Acesso",
		"D-REP Facial",
		"Smart Point",
		"Smart Point Bus",
		"Smart Print Facial",
		"PrintPoint III",
		"Biopoint II-S",
		"MicroPoint XP",
		"MicroPoint II",
		"MicroPoint ID",
		"MicroPoint Bio",
		"MicroPoint Face",
	},
	"ControliD": {
		"iDClass Bio",
		"iDClass Bio Prox",
		"iDClass Facial",
		"iDClass 373",
		"iDFlex",
		"iDProx Compact",
		"iDProx Slim",
		"iDFace Max",
		"iDAccess Pro Prox",
		"iDAccess Nano Prox",
		"iDBio",
		"iDUHF",
		"iDLock Bio",
	},
	"Intelbras": {
		"SS 3530 MF",
		"SS 3510 MF",
		"SS 7500 MF",
		"FR 1211",
		"FR 1311",
		"TF 373",
	},
	"Hikvision": {
		"DS-K1T341",
		"DS-K1T671",
		"MinMoe",
		"DS-K1T606",
		"ProFace X",
		"ValueFace",
	},
	"ZKTeco": {
		"F18",
		"F19",
		"SF100",
		"SF400",
		"MB560",
		"MB360",
		"ProFace X",
	},
	"Topdata": {
		"Inner REP Plus",
		"Inner Ponto 4",
		"Inner 373",
		"Relógio Pontto",
		"Leitor facial F4 / T4",
		"Catraca Revolution Easy",
		"Catraca Revolution Facial",
		"Catraca Fit 4",
		"Catraca Box 4",
		"Catraca Flow",
		"Catraca PNE 4",
	},
	"GAREN": {
		"Cancela Intense AC",
		"Cancela Intense BLDC",
		"Cancela BLDC Pedágio",
		"Cancela Classic AC",
		"Cancela Classic DC",
		"Cancela Compacta",
		"Cancela Flow",
	},
	"CAME": {
		"Gard GT4",
		"Gard GT8",
		"Gard PT Brushless",
		"Gard PX Brushless",
		"Gard 3250",
		"Gard 5000",
		"GPX",
	},
	"Digicon": {
		"MCA Acesso/Painel",
		"MCANET II",
		"MRA",
		"CATRAX PLUS",
		"CATRAX MASTER",
		"TORNIQUETE TX1500",
		"TORNIQUETE DUO",
		"DCLOCK",
	},
}

// CatalogManufacturers returns the known manufacturers in sorted order.
func CatalogManufacturers() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogModels returns the known models for a manufacturer. The second
// return value is false for manufacturers not in the catalog.
func CatalogModels(manufacturer string) ([]string, bool) {
	models, ok := catalog[manufacturer]
	if !ok {
		return nil, false
	}
	out := make([]string, len(models))
	copy(out, models)
	return out, true
}
