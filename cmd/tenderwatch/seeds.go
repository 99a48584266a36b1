package main

import "github.com/brunesco/tenderwatch"

// DefaultSources returns the built-in list of New Caledonia tender portals.
// The list mixes the territorial platforms with provincial, municipal and
// institutional pages that publish their own notices.
func DefaultSources() []tenderwatch.Source {
	return []tenderwatch.Source{
		{Name: "Portail Marchés Publics NC", ListingURL: "https://portail.marchespublics.nc/?page=Entreprise.EntrepriseAdvancedSearch&searchAnnCons", Active: true},
		{Name: "BOAMP – 988", ListingURL: "https://www.boamp.fr/pages/recherche/?refine.code_departement=988", Active: true},
		{Name: "e-MarchesPublics – NC", ListingURL: "https://www.e-marchespublics.com/appel-offre/outre-mer/nouvelle-caledonie/", Active: true},
		{Name: "Province Sud – AOPs", ListingURL: "https://www.province-sud.nc/aops/", Active: true},
		{Name: "Province Nord", ListingURL: "https://marchespublics.province-nord.nc/sallemarche.aspx", Active: true},
		{Name: "Province des Îles", ListingURL: "https://www.province-iles.nc/appel-offres", Active: true},
		{Name: "Mont-Dore", ListingURL: "https://www.mont-dore.nc/marches-publics", Active: true},
		{Name: "Dumbéa", ListingURL: "https://www.ville-dumbea.nc/dumbea-pratique/marches-publics", Active: true},
		{Name: "IFAP", ListingURL: "https://www.ifap.nc/consultations", Active: true},
		{Name: "CCI NC", ListingURL: "https://www.cci.nc/la-cci-nc/appels-d-offres-et-consultations", Active: true},
		{Name: "UNC", ListingURL: "https://unc.nc/utile/appel-doffres/", Active: true},
	}
}
