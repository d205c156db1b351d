package chart

// accountDef is one row of the static chart-of-accounts table. Hierarchy is
// derived from code prefixes by buildTree; row order is the HRM2 sequence.
type accountDef struct {
	code   string
	labels Labels
}

// labels4 keeps the table below readable.
func labels4(de, fr, it, en string) Labels {
	return Labels{DE: de, FR: fr, IT: it, EN: en}
}

// balanceSheetAccounts covers the HRM2 balance sheet (Aktiven/Passiven).
var balanceSheetAccounts = []accountDef{
	{"1", labels4("Aktiven", "Actifs", "Attivi", "Assets")},
	{"10", labels4("Finanzvermögen", "Patrimoine financier", "Beni patrimoniali", "Financial assets")},
	{"100", labels4("Flüssige Mittel und kurzfristige Geldanlagen", "Disponibilités et placements à court terme", "Liquidità e investimenti a breve termine", "Cash and short-term investments")},
	{"101", labels4("Forderungen", "Créances", "Crediti", "Receivables")},
	{"102", labels4("Kurzfristige Finanzanlagen", "Placements financiers à court terme", "Investimenti finanziari a breve termine", "Short-term financial investments")},
	{"104", labels4("Aktive Rechnungsabgrenzungen", "Actifs de régularisation", "Ratei e risconti attivi", "Accrued income and deferred charges")},
	{"106", labels4("Vorräte und angefangene Arbeiten", "Stocks et travaux en cours", "Scorte e lavori in corso", "Inventories and work in progress")},
	{"107", labels4("Finanzanlagen", "Placements financiers", "Investimenti finanziari", "Financial investments")},
	{"108", labels4("Sachanlagen Finanzvermögen", "Immobilisations corporelles du patrimoine financier", "Investimenti materiali dei beni patrimoniali", "Tangible assets, financial assets")},
	{"109", labels4("Forderungen gegenüber Spezialfinanzierungen", "Créances envers les financements spéciaux", "Crediti verso finanziamenti speciali", "Receivables from special financing")},
	{"14", labels4("Verwaltungsvermögen", "Patrimoine administratif", "Beni amministrativi", "Administrative assets")},
	{"140", labels4("Sachanlagen Verwaltungsvermögen", "Immobilisations corporelles du patrimoine administratif", "Investimenti materiali dei beni amministrativi", "Tangible assets, administrative assets")},
	{"142", labels4("Immaterielle Anlagen", "Immobilisations incorporelles", "Investimenti immateriali", "Intangible assets")},
	{"144", labels4("Darlehen", "Prêts", "Mutui", "Loans")},
	{"145", labels4("Beteiligungen und Grundkapitalien", "Participations et capital social", "Partecipazioni e capitale sociale", "Participations and share capital")},
	{"146", labels4("Investitionsbeiträge", "Subventions d'investissement", "Contributi per investimenti", "Investment contributions")},
	{"148", labels4("Kumulierte zusätzliche Abschreibungen", "Amortissements supplémentaires cumulés", "Ammortamenti supplementari cumulati", "Accumulated additional depreciation")},
	{"2", labels4("Passiven", "Passifs", "Passivi", "Liabilities and equity")},
	{"20", labels4("Fremdkapital", "Capitaux de tiers", "Capitale di terzi", "Liabilities")},
	{"200", labels4("Laufende Verbindlichkeiten", "Engagements courants", "Impegni correnti", "Current liabilities")},
	{"201", labels4("Kurzfristige Finanzverbindlichkeiten", "Engagements financiers à court terme", "Impegni finanziari a breve termine", "Short-term financial liabilities")},
	{"204", labels4("Passive Rechnungsabgrenzungen", "Passifs de régularisation", "Ratei e risconti passivi", "Accrued expenses and deferred income")},
	{"205", labels4("Kurzfristige Rückstellungen", "Provisions à court terme", "Accantonamenti a breve termine", "Short-term provisions")},
	{"206", labels4("Langfristige Finanzverbindlichkeiten", "Engagements financiers à long terme", "Impegni finanziari a lungo termine", "Long-term financial liabilities")},
	{"208", labels4("Langfristige Rückstellungen", "Provisions à long terme", "Accantonamenti a lungo termine", "Long-term provisions")},
	{"209", labels4("Verbindlichkeiten gegenüber Spezialfinanzierungen", "Engagements envers les financements spéciaux", "Impegni verso finanziamenti speciali", "Liabilities to special financing")},
	{"29", labels4("Eigenkapital", "Capital propre", "Capitale proprio", "Equity")},
	{"290", labels4("Verpflichtungen gegenüber Spezialfinanzierungen im Eigenkapital", "Engagements envers les financements spéciaux dans le capital propre", "Impegni verso finanziamenti speciali nel capitale proprio", "Commitments to special financing in equity")},
	{"296", labels4("Neubewertungsreserve Finanzvermögen", "Réserve de réévaluation du patrimoine financier", "Riserva di rivalutazione dei beni patrimoniali", "Revaluation reserve, financial assets")},
	{"299", labels4("Bilanzüberschuss oder -fehlbetrag", "Excédent ou découvert du bilan", "Eccedenza o disavanzo di bilancio", "Accumulated surplus or deficit")},
}

// incomeStatementAccounts covers the HRM2 income statement
// (Aufwand/Ertrag), down to selected four-digit detail accounts.
var incomeStatementAccounts = []accountDef{
	{"3", labels4("Aufwand", "Charges", "Spese", "Expenses")},
	{"30", labels4("Personalaufwand", "Charges de personnel", "Spese per il personale", "Personnel expenses")},
	{"300", labels4("Behörden und Kommissionen", "Autorités et commissions", "Autorità e commissioni", "Authorities and commissions")},
	{"301", labels4("Löhne des Verwaltungs- und Betriebspersonals", "Salaires du personnel administratif et d'exploitation", "Stipendi del personale amministrativo e d'esercizio", "Wages of administrative and operational staff")},
	{"303", labels4("Arbeitgeberbeiträge", "Cotisations patronales", "Contributi del datore di lavoro", "Employer contributions")},
	{"304", labels4("Zulagen", "Allocations", "Assegni", "Allowances")},
	{"305", labels4("Arbeitgeberleistungen", "Prestations de l'employeur", "Prestazioni del datore di lavoro", "Employer benefits")},
	{"309", labels4("Übriger Personalaufwand", "Autres charges de personnel", "Altre spese per il personale", "Other personnel expenses")},
	{"31", labels4("Sach- und übriger Betriebsaufwand", "Charges de biens et services et autres charges d'exploitation", "Spese per beni e servizi e altre spese d'esercizio", "General and operating expenses")},
	{"310", labels4("Material- und Warenaufwand", "Charges de matériel et de marchandises", "Spese per materiale e merci", "Material and goods expenses")},
	{"311", labels4("Nicht aktivierbare Anlagen", "Immobilisations non portées à l'actif", "Investimenti non attivabili", "Non-capitalized assets")},
	{"312", labels4("Ver- und Entsorgung", "Approvisionnement et élimination", "Approvvigionamento e smaltimento", "Supply and disposal")},
	{"313", labels4("Dienstleistungen und Honorare", "Prestations de services et honoraires", "Prestazioni di servizi e onorari", "Services and fees")},
	{"314", labels4("Baulicher und betrieblicher Unterhalt", "Entretien des constructions et de l'exploitation", "Manutenzione edile e d'esercizio", "Building and operational maintenance")},
	{"315", labels4("Unterhalt Mobilien und immaterielle Anlagen", "Entretien des biens meubles et immobilisations incorporelles", "Manutenzione di beni mobili e investimenti immateriali", "Maintenance of movables and intangibles")},
	{"316", labels4("Mieten, Leasing, Pachten", "Loyers, leasing, fermages", "Affitti, leasing, locazioni", "Rents, leasing, leaseholds")},
	{"317", labels4("Spesenentschädigungen", "Remboursements de frais", "Rimborsi spese", "Expense allowances")},
	{"318", labels4("Wertberichtigungen auf Forderungen", "Réévaluations sur créances", "Rettifiche di valore su crediti", "Value adjustments on receivables")},
	{"319", labels4("Verschiedener Betriebsaufwand", "Charges d'exploitation diverses", "Spese d'esercizio diverse", "Miscellaneous operating expenses")},
	{"33", labels4("Abschreibungen Verwaltungsvermögen", "Amortissements du patrimoine administratif", "Ammortamenti dei beni amministrativi", "Depreciation, administrative assets")},
	{"330", labels4("Planmässige Abschreibungen Sachanlagen", "Amortissements planifiés des immobilisations corporelles", "Ammortamenti pianificati degli investimenti materiali", "Planned depreciation of tangible assets")},
	{"332", labels4("Planmässige Abschreibungen immaterielle Anlagen", "Amortissements planifiés des immobilisations incorporelles", "Ammortamenti pianificati degli investimenti immateriali", "Planned depreciation of intangible assets")},
	{"34", labels4("Finanzaufwand", "Charges financières", "Spese finanziarie", "Financial expenses")},
	{"340", labels4("Zinsaufwand", "Charges d'intérêts", "Spese per interessi", "Interest expenses")},
	{"341", labels4("Realisierte Kursverluste", "Pertes de cours réalisées", "Perdite di corso realizzate", "Realized exchange losses")},
	{"343", labels4("Liegenschaftenaufwand Finanzvermögen", "Charges des immeubles du patrimoine financier", "Spese per immobili dei beni patrimoniali", "Property expenses, financial assets")},
	{"35", labels4("Einlagen in Fonds und Spezialfinanzierungen", "Attributions aux fonds et financements spéciaux", "Versamenti a fondi e finanziamenti speciali", "Deposits into funds and special financing")},
	{"36", labels4("Transferaufwand", "Charges de transfert", "Spese di riversamento", "Transfer expenses")},
	{"360", labels4("Ertragsanteile an Dritte", "Parts de revenus destinées à des tiers", "Quote di ricavi a terzi", "Revenue shares to third parties")},
	{"3600", labels4("Ertragsanteile an Bund", "Parts de revenus destinées à la Confédération", "Quote di ricavi alla Confederazione", "Revenue shares to the Confederation")},
	{"3601", labels4("Ertragsanteile an Kantone", "Parts de revenus destinées aux cantons", "Quote di ricavi ai cantoni", "Revenue shares to cantons")},
	{"3602", labels4("Ertragsanteile an Gemeinden", "Parts de revenus destinées aux communes", "Quote di ricavi ai comuni", "Revenue shares to municipalities")},
	{"361", labels4("Entschädigungen an Gemeinwesen", "Dédommagements aux collectivités publiques", "Indennizzi a enti pubblici", "Compensation to public authorities")},
	{"362", labels4("Finanz- und Lastenausgleich", "Péréquation financière et compensation des charges", "Perequazione finanziaria e compensazione degli oneri", "Fiscal equalization and cost compensation")},
	{"363", labels4("Beiträge an Gemeinwesen und Dritte", "Subventions aux collectivités publiques et à des tiers", "Contributi a enti pubblici e terzi", "Contributions to public authorities and third parties")},
	{"364", labels4("Wertberichtigungen Darlehen", "Réévaluations des prêts", "Rettifiche di valore su mutui", "Value adjustments on loans")},
	{"365", labels4("Wertberichtigungen Beteiligungen", "Réévaluations des participations", "Rettifiche di valore su partecipazioni", "Value adjustments on participations")},
	{"366", labels4("Abschreibungen Investitionsbeiträge", "Amortissements des subventions d'investissement", "Ammortamenti dei contributi per investimenti", "Depreciation of investment contributions")},
	{"369", labels4("Verschiedener Transferaufwand", "Charges de transfert diverses", "Spese di riversamento diverse", "Miscellaneous transfer expenses")},
	{"37", labels4("Durchlaufende Beiträge", "Subventions redistribuées", "Contributi da riversare", "Pass-through contributions")},
	{"38", labels4("Ausserordentlicher Aufwand", "Charges extraordinaires", "Spese straordinarie", "Extraordinary expenses")},
	{"39", labels4("Interne Verrechnungen", "Imputations internes", "Addebiti interni", "Internal charges")},
	{"4", labels4("Ertrag", "Revenus", "Ricavi", "Revenues")},
	{"40", labels4("Fiskalertrag", "Revenus fiscaux", "Ricavi fiscali", "Tax revenues")},
	{"400", labels4("Direkte Steuern natürliche Personen", "Impôts directs, personnes physiques", "Imposte dirette, persone fisiche", "Direct taxes, natural persons")},
	{"4000", labels4("Einkommenssteuern natürliche Personen", "Impôts sur le revenu, personnes physiques", "Imposte sul reddito, persone fisiche", "Income taxes, natural persons")},
	{"4001", labels4("Vermögenssteuern natürliche Personen", "Impôts sur la fortune, personnes physiques", "Imposte sulla sostanza, persone fisiche", "Wealth taxes, natural persons")},
	{"401", labels4("Direkte Steuern juristische Personen", "Impôts directs, personnes morales", "Imposte dirette, persone giuridiche", "Direct taxes, legal entities")},
	{"402", labels4("Übrige direkte Steuern", "Autres impôts directs", "Altre imposte dirette", "Other direct taxes")},
	{"403", labels4("Besitz- und Aufwandsteuern", "Impôts sur la possession et la dépense", "Imposte sul possesso e sulla spesa", "Property and expenditure taxes")},
	{"41", labels4("Regalien und Konzessionen", "Patentes et concessions", "Regalie e concessioni", "Royalties and concessions")},
	{"42", labels4("Entgelte", "Taxes", "Tasse e retribuzioni", "Fees and charges")},
	{"420", labels4("Ersatzabgaben", "Taxes de compensation", "Tasse sostitutive", "Compensatory charges")},
	{"421", labels4("Gebühren für Amtshandlungen", "Émoluments pour actes administratifs", "Tasse per atti ufficiali", "Fees for official acts")},
	{"423", labels4("Schul- und Kursgelder", "Écolages et finances de cours", "Tasse scolastiche e di corso", "School and course fees")},
	{"424", labels4("Benützungsgebühren und Dienstleistungen", "Taxes d'utilisation et prestations de services", "Tasse d'utilizzo e prestazioni di servizi", "Usage fees and services")},
	{"425", labels4("Erlös aus Verkäufen", "Produit des ventes", "Ricavi da vendite", "Sales proceeds")},
	{"426", labels4("Rückerstattungen", "Remboursements", "Rimborsi", "Reimbursements")},
	{"427", labels4("Bussen", "Amendes", "Multe", "Fines")},
	{"429", labels4("Übrige Entgelte", "Autres taxes", "Altre tasse", "Other fees")},
	{"43", labels4("Verschiedene Erträge", "Revenus divers", "Ricavi diversi", "Miscellaneous revenues")},
	{"44", labels4("Finanzertrag", "Revenus financiers", "Ricavi finanziari", "Financial revenues")},
	{"440", labels4("Zinsertrag", "Revenus d'intérêts", "Ricavi da interessi", "Interest income")},
	{"441", labels4("Realisierte Kursgewinne", "Gains de cours réalisés", "Utili di corso realizzati", "Realized exchange gains")},
	{"443", labels4("Liegenschaftenertrag Finanzvermögen", "Revenus des immeubles du patrimoine financier", "Ricavi da immobili dei beni patrimoniali", "Property income, financial assets")},
	{"444", labels4("Wertberichtigungen Anlagen Finanzvermögen", "Réévaluations des placements du patrimoine financier", "Rettifiche di valore su investimenti dei beni patrimoniali", "Value adjustments, financial investments")},
	{"445", labels4("Finanzertrag aus Darlehen und Beteiligungen", "Revenus financiers des prêts et participations", "Ricavi finanziari da mutui e partecipazioni", "Financial income from loans and participations")},
	{"446", labels4("Finanzertrag von öffentlichen Unternehmungen", "Revenus financiers des entreprises publiques", "Ricavi finanziari da imprese pubbliche", "Financial income from public enterprises")},
	{"447", labels4("Liegenschaftenertrag Verwaltungsvermögen", "Revenus des immeubles du patrimoine administratif", "Ricavi da immobili dei beni amministrativi", "Property income, administrative assets")},
	{"449", labels4("Übriger Finanzertrag", "Autres revenus financiers", "Altri ricavi finanziari", "Other financial income")},
	{"45", labels4("Entnahmen aus Fonds und Spezialfinanzierungen", "Prélèvements sur les fonds et financements spéciaux", "Prelievi da fondi e finanziamenti speciali", "Withdrawals from funds and special financing")},
	{"46", labels4("Transferertrag", "Revenus de transfert", "Ricavi da riversamento", "Transfer revenues")},
	{"460", labels4("Ertragsanteile", "Parts de revenus", "Quote di ricavi", "Revenue shares")},
	{"4600", labels4("Anteil an Bundeserträgen", "Part aux revenus de la Confédération", "Quota dei ricavi della Confederazione", "Share of federal revenues")},
	{"4601", labels4("Anteil an Kantonserträgen", "Part aux revenus des cantons", "Quota dei ricavi dei cantoni", "Share of cantonal revenues")},
	{"461", labels4("Entschädigungen von Gemeinwesen", "Dédommagements de collectivités publiques", "Indennizzi da enti pubblici", "Compensation from public authorities")},
	{"462", labels4("Finanz- und Lastenausgleich", "Péréquation financière et compensation des charges", "Perequazione finanziaria e compensazione degli oneri", "Fiscal equalization and cost compensation")},
	{"463", labels4("Beiträge von Gemeinwesen und Dritten", "Subventions des collectivités publiques et de tiers", "Contributi da enti pubblici e terzi", "Contributions from public authorities and third parties")},
	{"466", labels4("Auflösung passivierte Investitionsbeiträge", "Dissolution des subventions d'investissement portées au passif", "Scioglimento dei contributi per investimenti passivati", "Release of deferred investment contributions")},
	{"469", labels4("Verschiedener Transferertrag", "Revenus de transfert divers", "Ricavi da riversamento diversi", "Miscellaneous transfer revenues")},
	{"47", labels4("Durchlaufende Beiträge", "Subventions à redistribuer", "Contributi da riversare", "Pass-through contributions")},
	{"48", labels4("Ausserordentlicher Ertrag", "Revenus extraordinaires", "Ricavi straordinari", "Extraordinary revenues")},
	{"49", labels4("Interne Verrechnungen", "Imputations internes", "Accrediti interni", "Internal credits")},
}
