package catalog

// bankTable lists participants by CLABE bank code.
var bankTable = []Bank{
	{Code: 2, Tag: "BANAMEX", Name: "Banco Nacional de México, S.A."},
	{Code: 6, Tag: "BANCOMEXT", Name: "Banco Nacional de Comercio Exterior"},
	{Code: 9, Tag: "BANOBRAS", Name: "Banco Nacional de Obras y Servicios Públicos"},
	{Code: 12, Tag: "BBVA BANCOMER", Name: "BBVA Bancomer, S.A."},
	{Code: 14, Tag: "SANTANDER", Name: "Banco Santander, S.A."},
	{Code: 19, Tag: "BANJERCITO", Name: "Banco Nacional del Ejército, Fuerza Aérea y Armada"},
	{Code: 21, Tag: "HSBC", Name: "HSBC México, S.A."},
	{Code: 22, Tag: "GE MONEY", Name: "GE Money Bank, S.A."},
	{Code: 30, Tag: "BAJÍO", Name: "Banco del Bajío, S.A."},
	{Code: 32, Tag: "IXE", Name: "IXE Banco, S.A."},
	{Code: 36, Tag: "INBURSA", Name: "Banco Inbursa, S.A."},
	{Code: 37, Tag: "INTERACCIONES", Name: "Banco Interacciones, S.A."},
	{Code: 42, Tag: "MIFEL", Name: "Banca Mifel, S.A."},
	{Code: 44, Tag: "SCOTIABANK", Name: "Scotiabank Inverlat, S.A."},
	{Code: 58, Tag: "BANREGIO", Name: "Banco Regional de Monterrey, S.A."},
	{Code: 59, Tag: "INVEX", Name: "Banco Invex, S.A."},
	{Code: 60, Tag: "BANSI", Name: "Bansi, S.A."},
	{Code: 62, Tag: "AFIRME", Name: "Banca Afirme, S.A."},
	{Code: 72, Tag: "BANORTE", Name: "Banco Mercantil del Norte, S.A."},
	{Code: 102, Tag: "ABNAMRO", Name: "ABN AMRO Bank México, S.A."},
	{Code: 103, Tag: "AMERICAN EXPRESS", Name: "American Express Bank (México), S.A."},
	{Code: 106, Tag: "BAMSA", Name: "Bank of America México, S.A."},
	{Code: 108, Tag: "TOKYO", Name: "Bank of Tokyo-Mitsubishi UFJ (México), S.A."},
	{Code: 110, Tag: "JP MORGAN", Name: "Banco J.P. Morgan, S.A."},
	{Code: 112, Tag: "BMONEX", Name: "Banco Monex, S.A."},
	{Code: 113, Tag: "VE POR MAS", Name: "Banco Ve por Mas, S.A."},
	{Code: 116, Tag: "ING", Name: "ING Bank (México), S.A."},
	{Code: 124, Tag: "DEUTSCHE", Name: "Deutsche Bank México, S.A."},
	{Code: 126, Tag: "CREDIT SUISSE", Name: "Banco Credit Suisse (México), S.A."},
	{Code: 127, Tag: "AZTECA", Name: "Banco Azteca, S.A."},
	{Code: 128, Tag: "AUTOFIN", Name: "Banco Autofin México, S.A."},
	{Code: 129, Tag: "BARCLAYS", Name: "Barclays Bank México, S.A."},
	{Code: 130, Tag: "COMPARTAMOS", Name: "Banco Compartamos, S.A."},
	{Code: 131, Tag: "FAMSA", Name: "Banco Ahorro Famsa, S.A."},
	{Code: 132, Tag: "BMULTIVA", Name: "Banco Multiva, S.A."},
	{Code: 133, Tag: "PRUDENTIAL", Name: "Prudencial Bank, S.A."},
	{Code: 134, Tag: "WAL-MART", Name: "Banco Wal Mart de México Adelante, S.A."},
	{Code: 135, Tag: "NAFIN", Name: "Nacional Financiera, S.N.C."},
	{Code: 136, Tag: "REGIONAL", Name: "Banco Regional, S.A."},
	{Code: 137, Tag: "BANCOPPEL", Name: "BanCoppel, S.A."},
	{Code: 138, Tag: "ABC CAPITAL", Name: "ABC Capital, S.A. I.B.M."},
	{Code: 139, Tag: "UBS BANK", Name: "UBS Banco, S.A."},
	{Code: 140, Tag: "FÁCIL", Name: "Banco Fácil, S.A."},
	{Code: 141, Tag: "VOLKSWAGEN", Name: "Volkswagen Bank S.A. Institución de Banca Múltiple"},
	{Code: 143, Tag: "CIBANCO", Name: "Consultoría Internacional Banco, S.A."},
	{Code: 145, Tag: "BBASE", Name: "Banco BASE, S.A. de I.B.M."},
	{Code: 147, Tag: "BANKAOOL", Name: "Bankaool, S.A., Institución de Banca Múltiple"},
	{Code: 148, Tag: "PAGATODO", Name: "Banco PagaTodo S.A., Institución de Banca Múltiple"},
	{Code: 150, Tag: "BIM", Name: "Banco Inmobiliario Mexicano, S.A., Institución de Banca Múltiple"},
	{Code: 152, Tag: "BANCREA", Name: "Banco Bancrea, S.A., Institución de Banca Múltiple"},
	{Code: 156, Tag: "SABADELL", Name: "Banco Sabadell, S.A. I.B.M."},
	{Code: 166, Tag: "BANSEFI", Name: "Banco del Ahorro Nacional y Servicios Financieros, S.N.C."},
	{Code: 168, Tag: "HIPOTECARIA FEDERAL", Name: "Sociedad Hipotecaria Federal, S.N.C."},
	{Code: 600, Tag: "MONEXCB", Name: "Monex Casa de Bolsa, S.A. de C.V."},
	{Code: 601, Tag: "GBM", Name: "GBM Grupo Bursátil Mexicano, S.A. de C.V."},
	{Code: 602, Tag: "MASARI CC.", Name: "Masari Casa de Cambio, S.A. de C.V."},
	{Code: 604, Tag: "C.B. INBURSA", Name: "Inversora Bursátil, S.A. de C.V."},
	{Code: 605, Tag: "VALUÉ", Name: "Valué, S.A. de C.V., Casa de Bolsa"},
	{Code: 606, Tag: "CB BASE", Name: "Base Internacional Casa de Bolsa, S.A. de C.V."},
	{Code: 607, Tag: "TIBER", Name: "Casa de Cambio Tiber, S.A. de C.V."},
	{Code: 608, Tag: "VECTOR", Name: "Vector Casa de Bolsa, S.A. de C.V."},
	{Code: 610, Tag: "B&B", Name: "B y B Casa de Cambio, S.A. de C.V."},
	{Code: 611, Tag: "INTERCAM", Name: "Intercam Casa de Cambio, S.A. de C.V."},
	{Code: 613, Tag: "MULTIVA", Name: "Multivalores Casa de Bolsa, S.A. de C.V. Multiva Gpo. Fin."},
	{Code: 614, Tag: "ACCIVAL", Name: "Acciones y Valores Banamex, S.A. de C.V., Casa de Bolsa"},
	{Code: 615, Tag: "MERRILL LYNCH", Name: "Merrill Lynch México, S.A. de C.V., Casa de Bolsa"},
	{Code: 616, Tag: "FINAMEX", Name: "Casa de Bolsa Finamex, S.A. de C.V."},
	{Code: 617, Tag: "VALMEX", Name: "Valores Mexicanos Casa de Bolsa, S.A. de C.V."},
	{Code: 618, Tag: "ÚNICA", Name: "Única Casa de Cambio, S.A. de C.V."},
	{Code: 619, Tag: "ASEGURADORA MAPFRE", Name: "MAPFRE Tepeyac S.A."},
	{Code: 620, Tag: "AFORE PROFUTURO", Name: "Profuturo G.N.P., S.A. de C.V."},
	{Code: 621, Tag: "CB ACTINBER", Name: "Actinver Casa de Bolsa, S.A. de C.V."},
	{Code: 622, Tag: "ACTINVE SI", Name: "Actinver S.A. de C.V."},
	{Code: 623, Tag: "SKANDIA", Name: "Skandia Vida S.A. de C.V."},
	{Code: 624, Tag: "CONSULTORÍA", Name: "Consultoría Internacional Casa de Cambio, S.A. de C.V."},
	{Code: 626, Tag: "CBDEUTSCHE", Name: "Deutsche Securities, S.A. de C.V."},
	{Code: 627, Tag: "ZURICH", Name: "Zurich Compañía de Seguros, S.A."},
	{Code: 628, Tag: "ZURICHVI", Name: "Zurich Vida, Compañía de Seguros, S.A."},
	{Code: 629, Tag: "HIPOTECARIA SU CASITA", Name: "Hipotecaria su Casita, S.A. de C.V."},
	{Code: 630, Tag: "C.B. INTERCAM", Name: "Intercam Casa de Bolsa, S.A. de C.V."},
	{Code: 631, Tag: "C.B. VANGUARDIA", Name: "Vanguardia Casa de Bolsa, S.A. de C.V."},
	{Code: 632, Tag: "BULLTICK C.B.", Name: "Bulltick Casa de Bolsa, S.A. de C.V."},
	{Code: 633, Tag: "STERLING", Name: "Sterling Casa de Cambio, S.A. de C.V."},
	{Code: 634, Tag: "FINCOMUN", Name: "Fincomún, Servicios Financieros Comunitarios, S.A. de C.V."},
	{Code: 636, Tag: "HDI SEGUROS", Name: "HDI Seguros, S.A. de C.V."},
	{Code: 637, Tag: "ORDER", Name: "OrderExpress Casa de Cambio , S.A. de C.V. AAC"},
	{Code: 638, Tag: "AKALA", Name: "Akala, S.A. de C.V., Sociedad Financiera Popular"},
	{Code: 640, Tag: "JP MORGAN C.B.", Name: "J.P. Morgan Casa de Bolsa, S.A. de C.V."},
	{Code: 642, Tag: "REFORMA", Name: "Operadora de Recursos Reforma, S.A. de C.V."},
	{Code: 646, Tag: "STP", Name: "Sistema de Transferencias y Pagos STP, S.A. de C.V., SOFOM E.N.R."},
	{Code: 647, Tag: "TELECOMM", Name: "Telecomunicaciones de México"},
	{Code: 648, Tag: "EVERCORE", Name: "Evercore Casa de Bolsa, S.A. de C.V."},
	{Code: 649, Tag: "SKANDIA", Name: "Skandia Operadora S.A. de C.V."},
	{Code: 651, Tag: "SEGMTY", Name: "Seguros Monterrey New York Life, S.A de C.V."},
	{Code: 652, Tag: "ASEA", Name: "Solución Asea, S.A. de C.V., Sociedad Financiera Popular"},
	{Code: 653, Tag: "KUSPIT", Name: "Kuspit Casa de Bolsa, S.A. de C.V."},
	{Code: 655, Tag: "SOFIEXPRESS", Name: "J.P. SOFIEXPRESS, S.A. de C.V., S.F.P."},
	{Code: 656, Tag: "UNAGRA", Name: "UNAGRA, S.A. de C.V., S.F.P."},
	{Code: 659, Tag: "OPCIONES EMPRESARIALES DEL NOROESTE", Name: "Opciones Empresariales Del Noreste, S.A. DE C.V."},
	{Code: 670, Tag: "LIBERTAD", Name: "Libertad Servicios Financieros, S.A. De C.V."},
	{Code: 846, Tag: "STP", Name: "Sistema de Transferencias y Pagos STP"},
	{Code: 901, Tag: "CLS", Name: "CLS Bank International"},
	{Code: 902, Tag: "INDEVAL", Name: "SD. INDEVAL, S.A. de C.V."},
	{Code: 999, Tag: "N/A", Name: "N/A"},
}
