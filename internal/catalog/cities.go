package catalog

// cityTable lists plaza codes in publication order. A code may appear more
// than once; every name is kept.
var cityTable = []City{
	{Code: 10, Name: "Aguascalientes"},
	{Code: 12, Name: "Calvillo"},
	{Code: 14, Name: "Jesús María"},
	{Code: 20, Name: "Mexicali"},
	{Code: 22, Name: "Ensenada"},
	{Code: 27, Name: "Tecate"},
	{Code: 27, Name: "Tijuana"},
	{Code: 28, Name: "La Mesa"},
	{Code: 28, Name: "Rosarito"},
	{Code: 28, Name: "Tijuana [alternate]"},
	{Code: 40, Name: "La Paz"},
	{Code: 41, Name: "Cabo San Lucas"},
	{Code: 42, Name: "Ciudad Constitución"},
	{Code: 43, Name: "Guerrero Negro"},
	{Code: 45, Name: "San José del Cabo"},
	{Code: 46, Name: "Santa Rosalía"},
	{Code: 50, Name: "Campeche"},
	{Code: 51, Name: "Calkiní"},
	{Code: 52, Name: "Ciudad del Carmen"},
	{Code: 53, Name: "Champotón"},
	{Code: 60, Name: "Gómez Palacio"},
	{Code: 60, Name: "Torreón"},
	{Code: 62, Name: "Ciudad Acuña"},
	{Code: 68, Name: "Monclova"},
	{Code: 71, Name: "Nava"},
	{Code: 72, Name: "Nueva Rosita"},
	{Code: 74, Name: "Parras de la Fuente"},
	{Code: 75, Name: "Piedras Negras"},
	{Code: 76, Name: "Ramos Arizpe"},
	{Code: 77, Name: "Sabinas"},
	{Code: 78, Name: "Saltillo"},
	{Code: 80, Name: "San Pedro de las Colonias"},
	{Code: 90, Name: "Colima"},
	{Code: 95, Name: "Manzanillo"},
	{Code: 97, Name: "Tecomán"},
	{Code: 100, Name: "Terán"},
	{Code: 100, Name: "Tuxtla Gutiérrez"},
	{Code: 103, Name: "Arriaga"},
	{Code: 107, Name: "Cintalapa"},
	{Code: 109, Name: "Comitán"},
	{Code: 109, Name: "Villa Las Rosas"},
	{Code: 111, Name: "Chiapa de Corso"},
	{Code: 113, Name: "F. Comalapa"},
	{Code: 114, Name: "Huixtla"},
	{Code: 123, Name: "Ocosingo"},
	{Code: 124, Name: "Ocozocuautla"},
	{Code: 125, Name: "Palenque"},
	{Code: 126, Name: "Pichucalco"},
	{Code: 127, Name: "Pijijiapan"},
	{Code: 128, Name: "Reforma"},
	{Code: 130, Name: "San Cristóbal de las Casas"},
	{Code: 131, Name: "Simojovel"},
	{Code: 133, Name: "Tapachula"},
	{Code: 135, Name: "Tonala"},
	{Code: 137, Name: "Venustiano Carranza"},
	{Code: 138, Name: "Villa Flores"},
	{Code: 140, Name: "Yajalón"},
	{Code: 150, Name: "Chihuahua"},
	{Code: 150, Name: "Ciudad Delicias"},
	{Code: 152, Name: "Ciudad Anáhuac"},
	{Code: 155, Name: "Ciudad Camargo"},
	{Code: 158, Name: "Ciudad Cuauhtémoc"},
	{Code: 161, Name: "Ciudad Guerrero"},
	{Code: 162, Name: "Parral"},
	{Code: 163, Name: "Ciudad Jiménez"},
	{Code: 164, Name: "Ciudad Juárez"},
	{Code: 165, Name: "Ciudad Madera"},
	{Code: 167, Name: "El Molino de Namiquipa"},
	{Code: 168, Name: "Nuevo Casas Grandes"},
	{Code: 180, Name: "Atizapan"},
	{Code: 180, Name: "Chalco"},
	{Code: 180, Name: "Ciudad de México"},
	{Code: 180, Name: "Coacalco"},
	{Code: 180, Name: "Cuautitlán Izcalli"},
	{Code: 180, Name: "Cuautitlán"},
	{Code: 180, Name: "Ecatepec"},
	{Code: 180, Name: "Huehuetoca"},
	{Code: 180, Name: "Huixquilucan"},
	{Code: 180, Name: "Ixtapaluca"},
	{Code: 180, Name: "Los Reyes La Paz"},
	{Code: 180, Name: "Naucalpan"},
	{Code: 180, Name: "Nezahualcóyotl"},
	{Code: 180, Name: "Tecamac"},
	{Code: 180, Name: "Teotihuacán"},
	{Code: 180, Name: "Texcoco"},
	{Code: 180, Name: "Tlalnepantla"},
	{Code: 190, Name: "Durango"},
	{Code: 198, Name: "N/A"},
	{Code: 201, Name: "Tepehuanes"},
	{Code: 202, Name: "Vicente Guerrero"},
	{Code: 210, Name: "Guanajuato"},
	{Code: 211, Name: "Abasolo"},
	{Code: 212, Name: "Acámbaro"},
	{Code: 213, Name: "Apaseo el Alto"},
	{Code: 214, Name: "Apaseo el Grande"},
	{Code: 215, Name: "Celaya"},
	{Code: 216, Name: "Comonfort"},
	{Code: 217, Name: "Coroneo"},
	{Code: 218, Name: "Cortazar"},
	{Code: 219, Name: "Cuerámaro"},
	{Code: 220, Name: "Dolores Hidalgo"},
	{Code: 222, Name: "Irapuato"},
	{Code: 223, Name: "Jaral del Progreso"},
	{Code: 224, Name: "Jerécuaro"},
	{Code: 225, Name: "León"},
	{Code: 226, Name: "Cd. Manuel Doblado"},
	{Code: 227, Name: "Moroleón"},
	{Code: 229, Name: "Pénjamo"},
	{Code: 232, Name: "Romita"},
	{Code: 233, Name: "Salamanca"},
	{Code: 234, Name: "Salvatierra"},
	{Code: 236, Name: "San Felipe"},
	{Code: 237, Name: "Purísima de Bustos"},
	{Code: 237, Name: "San Francisco del Rincoón"},
	{Code: 238, Name: "San José Iturbide"},
	{Code: 239, Name: "San Luis de la Paz"},
	{Code: 240, Name: "San Miguel Allende"},
	{Code: 244, Name: "Silao"},
	{Code: 247, Name: "Uriangato"},
	{Code: 248, Name: "Valle de Santiago"},
	{Code: 249, Name: "Yuriria"},
	{Code: 260, Name: "Chilpancingo"},
	{Code: 261, Name: "Acapulco"},
	{Code: 263, Name: "Arcelia"},
	{Code: 264, Name: "Atoyac de Álvarez"},
	{Code: 266, Name: "Ciudad Altamirano"},
	{Code: 267, Name: "Coyuca de Benítez"},
	{Code: 270, Name: "Chilapa"},
	{Code: 271, Name: "Huitzuco"},
	{Code: 272, Name: "Iguala"},
	{Code: 272, Name: "La Sabana"},
	{Code: 274, Name: "Cuajinicuilapa"},
	{Code: 274, Name: "Ometepec"},
	{Code: 275, Name: "San Marcos"},
	{Code: 276, Name: "Taxco"},
	{Code: 278, Name: "Teloloapan"},
	{Code: 281, Name: "Tlapa"},
	{Code: 282, Name: "Ixtapa Zihuatanejo"},
	{Code: 282, Name: "Zihuatanejo"},
	{Code: 290, Name: "Pachuca"},
	{Code: 291, Name: "Actopan"},
	{Code: 292, Name: "Apam"},
	{Code: 293, Name: "Atotonilco el Grande"},
	{Code: 294, Name: "Ciudad Sahagún"},
	{Code: 294, Name: "Teocaltiche"},
	{Code: 295, Name: "Cuautepec"},
	{Code: 296, Name: "Huejutla"},
	{Code: 297, Name: "Huichapan"},
	{Code: 298, Name: "Ixmiquilpan"},
	{Code: 303, Name: "Progreso de Obregón"},
	{Code: 305, Name: "Tepeapulco"},
	{Code: 308, Name: "Tizayuca"},
	{Code: 311, Name: "Tula de Allende"},
	{Code: 312, Name: "Tulancingo"},
	{Code: 313, Name: "Zacualtipán"},
	{Code: 314, Name: "Zimapán"},
	{Code: 320, Name: "El Salto"},
	{Code: 320, Name: "Guadalajara"},
	{Code: 320, Name: "San Pedro Tlaquepaque"},
	{Code: 320, Name: "Tlajomulco"},
	{Code: 320, Name: "Tonala [alternate]"},
	{Code: 320, Name: "Zapopan"},
	{Code: 326, Name: "Ameca"},
	{Code: 327, Name: "Arandas"},
	{Code: 330, Name: "Atotonilco el Alto"},
	{Code: 331, Name: "Atequiza"},
	{Code: 333, Name: "Autlán"},
	{Code: 334, Name: "Azteca"},
	{Code: 340, Name: "Casimiro Castillo"},
	{Code: 341, Name: "Cihuatlán"},
	{Code: 342, Name: "Ciudad Guzmán"},
	{Code: 346, Name: "Chapala"},
	{Code: 348, Name: "El Grullo"},
	{Code: 355, Name: "Ixtlahuacán del Río"},
	{Code: 356, Name: "Jalostotitlán"},
	{Code: 357, Name: "Jamay"},
	{Code: 361, Name: "La Barca"},
	{Code: 362, Name: "Lagos de Moreno"},
	{Code: 370, Name: "Ocotlán"},
	{Code: 373, Name: "Pihuamo"},
	{Code: 375, Name: "Las Juntas"},
	{Code: 375, Name: "Nuevo Vallarta"},
	{Code: 375, Name: "Pitillal"},
	{Code: 375, Name: "Puerto Vallarta"},
	{Code: 381, Name: "San Juan de los Lagos"},
	{Code: 382, Name: "N/A"},
	{Code: 384, Name: "San Miguel el Alto"},
	{Code: 385, Name: "San Patricio Melaque"},
	{Code: 386, Name: "Sayula"},
	{Code: 387, Name: "Tala"},
	{Code: 389, Name: "Tamazula de Gordiano"},
	{Code: 391, Name: "Tecalitlán"},
	{Code: 396, Name: "Tepatitlán"},
	{Code: 397, Name: "Tequila"},
	{Code: 403, Name: "Tototlán"},
	{Code: 404, Name: "Túxpam"},
	{Code: 411, Name: "Villa Hidalgo"},
	{Code: 413, Name: "Zacoalco de Torres"},
	{Code: 414, Name: "Zapotiltic"},
	{Code: 416, Name: "Zapotlanejo"},
	{Code: 420, Name: "Toluca"},
	{Code: 421, Name: "Acambay"},
	{Code: 422, Name: "Almoloya de Juárez"},
	{Code: 424, Name: "Amecameca"},
	{Code: 425, Name: "Apaxco"},
	{Code: 426, Name: "Atlacomulco"},
	{Code: 428, Name: "Coatepec de Harinas"},
	{Code: 430, Name: "Chicoloapan"},
	{Code: 431, Name: "Chiconcuac"},
	{Code: 432, Name: "El Oro"},
	{Code: 433, Name: "Ixtapan de la Sal"},
	{Code: 434, Name: "Ixtlahuaca"},
	{Code: 435, Name: "Jilotepec"},
	{Code: 438, Name: "Lerma"},
	{Code: 441, Name: "Metepec"},
	{Code: 443, Name: "Otumba"},
	{Code: 445, Name: "San Mateo Atenco"},
	{Code: 446, Name: "Tejupilco"},
	{Code: 448, Name: "Temascaltepec"},
	{Code: 449, Name: "Temoaya"},
	{Code: 450, Name: "Tenancingo"},
	{Code: 451, Name: "Tenago del Valle"},
	{Code: 453, Name: "Santiago Tiangistenco"},
	{Code: 455, Name: "Tultepec"},
	{Code: 456, Name: "Tultitlán"},
	{Code: 457, Name: "Valle de Bravo"},
	{Code: 460, Name: "Villa Nicolás Romero"},
	{Code: 463, Name: "Zumpango"},
	{Code: 470, Name: "Morelia"},
	{Code: 472, Name: "Aguililla"},
	{Code: 476, Name: "Apatzingán"},
	{Code: 480, Name: "Ciudad Hidalgo"},
	{Code: 483, Name: "Cotija"},
	{Code: 484, Name: "Cuitzeo"},
	{Code: 492, Name: "Huetamo"},
	{Code: 493, Name: "Jacona"},
	{Code: 494, Name: "Jiquilpan"},
	{Code: 496, Name: "La Piedad"},
	{Code: 497, Name: "Lázaro Cárdenas"},
	{Code: 498, Name: "Los Reyes"},
	{Code: 499, Name: "Maravatío"},
	{Code: 501, Name: "Nueva Italia"},
	{Code: 506, Name: "Pátzcuaro"},
	{Code: 508, Name: "Purépero"},
	{Code: 509, Name: "Puruandiro"},
	{Code: 512, Name: "Sahuayo"},
	{Code: 515, Name: "Tacámbaro"},
	{Code: 517, Name: "Tangancícuaro"},
	{Code: 519, Name: "Tepalcatepec"},
	{Code: 523, Name: "Tlazazalca"},
	{Code: 528, Name: "Uruapan"},
	{Code: 533, Name: "Yurécuaro"},
	{Code: 534, Name: "Zacapu"},
	{Code: 535, Name: "Zamora"},
	{Code: 536, Name: "Zinapécuaro"},
	{Code: 537, Name: "Zitácuaro"},
	{Code: 540, Name: "Cuernavaca"},
	{Code: 542, Name: "Cuautla"},
	{Code: 542, Name: "Oaxtepec, Morelos"},
	{Code: 543, Name: "Jiutepec"},
	{Code: 544, Name: "Jojutla"},
	{Code: 545, Name: "Puente de Ixtla"},
	{Code: 546, Name: "Temixco"},
	{Code: 548, Name: "Tetecala"},
	{Code: 549, Name: "Yautepec"},
	{Code: 552, Name: "Zacatepec"},
	{Code: 560, Name: "Tepic"},
	{Code: 561, Name: "Acaponeta"},
	{Code: 562, Name: "Ahuacatlán"},
	{Code: 564, Name: "Compostela"},
	{Code: 566, Name: "Ixtlán del Río"},
	{Code: 571, Name: "San Blas"},
	{Code: 573, Name: "Santiago Ixcuintla"},
	{Code: 575, Name: "Túxpam [alternate]"},
	{Code: 580, Name: "Apodaca"},
	{Code: 580, Name: "Cadereyta"},
	{Code: 580, Name: "Cd. Guadalupe"},
	{Code: 580, Name: "General Escobedo"},
	{Code: 580, Name: "Monterrey"},
	{Code: 580, Name: "San Nicolás de los Garza"},
	{Code: 580, Name: "San Pedro Garza García"},
	{Code: 580, Name: "Santa Catarina"},
	{Code: 583, Name: "Allende"},
	{Code: 592, Name: "General Zuazua"},
	{Code: 595, Name: "Linares"},
	{Code: 597, Name: "Montemorelos"},
	{Code: 599, Name: "Sabinas Hidalgo"},
	{Code: 600, Name: "Salinas Victoria"},
	{Code: 601, Name: "El Cercado"},
	{Code: 601, Name: "Villa de Santiago"},
	{Code: 610, Name: "Oaxaca"},
	{Code: 613, Name: "Tlaxiaco"},
	{Code: 614, Name: "Huajuapan de León"},
	{Code: 616, Name: "Ixtepec"},
	{Code: 617, Name: "Juchitán"},
	{Code: 619, Name: "Loma Bonita"},
	{Code: 620, Name: "Matías Romero"},
	{Code: 621, Name: "Miahuatlán"},
	{Code: 622, Name: "Ocotlán [alternate]"},
	{Code: 624, Name: "Puerto Escondido"},
	{Code: 626, Name: "Salina Cruz"},
	{Code: 627, Name: "Lagunas"},
	{Code: 628, Name: "Tuxtepec"},
	{Code: 630, Name: "Pochutla"},
	{Code: 631, Name: "San Pedro Tapanatepec"},
	{Code: 632, Name: "Santa Lucía del Camino"},
	{Code: 634, Name: "Bahías de Huatulco"},
	{Code: 635, Name: "Santiago Juxtlahuaca"},
	{Code: 636, Name: "Pinotepa Nacional"},
	{Code: 637, Name: "Tehuantepec"},
	{Code: 638, Name: "Tlacolula"},
	{Code: 640, Name: "Zimatlán"},
	{Code: 650, Name: "Cholula"},
	{Code: 650, Name: "La Resurrección"},
	{Code: 650, Name: "Puebla"},
	{Code: 650, Name: "San Baltazar Campeche"},
	{Code: 651, Name: "N/A"},
	{Code: 652, Name: "Acatzingo"},
	{Code: 654, Name: "Atlixco"},
	{Code: 656, Name: "Cuetzalan"},
	{Code: 659, Name: "Huauchinango"},
	{Code: 662, Name: "Izúcar de Matamoros"},
	{Code: 667, Name: "San Martín Texmelucan"},
	{Code: 668, Name: "San Felipe Hueyotlipan"},
	{Code: 669, Name: "Tecamachalco"},
	{Code: 670, Name: "Tehuacán"},
	{Code: 671, Name: "San Lorenzo"},
	{Code: 672, Name: "Teziutlán"},
	{Code: 674, Name: "Xicotepec de Juárez"},
	{Code: 676, Name: "Zacatlán"},
	{Code: 680, Name: "Pedro Escobedo"},
	{Code: 680, Name: "Querétaro"},
	{Code: 680, Name: "Villa Corregidora"},
	{Code: 681, Name: "Amealco"},
	{Code: 685, Name: "San Juan del Río"},
	{Code: 686, Name: "Tequisquiapan"},
	{Code: 690, Name: "Chetumal"},
	{Code: 691, Name: "Cancún"},
	{Code: 691, Name: "Col. Puerto Juárez"},
	{Code: 692, Name: "Cozumel"},
	{Code: 693, Name: "N/A"},
	{Code: 694, Name: "Playa del Carmen"},
	{Code: 700, Name: "San Luis Potosí"},
	{Code: 703, Name: "Cerritos"},
	{Code: 705, Name: "Ciudad Valles"},
	{Code: 709, Name: "Matehuala"},
	{Code: 711, Name: "Río Verde"},
	{Code: 716, Name: "Tamuín"},
	{Code: 730, Name: "Culiacán"},
	{Code: 735, Name: "Concordia"},
	{Code: 736, Name: "Cosala"},
	{Code: 737, Name: "Choix"},
	{Code: 738, Name: "El Fuerte"},
	{Code: 739, Name: "Escuinapa"},
	{Code: 740, Name: "Guamúchil"},
	{Code: 741, Name: "Guasave"},
	{Code: 743, Name: "Los Mochis"},
	{Code: 743, Name: "Topolobampo"},
	{Code: 744, Name: "Mazatlán"},
	{Code: 745, Name: "Mocorito"},
	{Code: 746, Name: "Navolato"},
	{Code: 760, Name: "Hermosillo"},
	{Code: 761, Name: "Agua Prieta"},
	{Code: 765, Name: "Caborca"},
	{Code: 766, Name: "Cananea"},
	{Code: 767, Name: "Ciudad Obregón"},
	{Code: 767, Name: "Esperanza"},
	{Code: 769, Name: "Empalme"},
	{Code: 770, Name: "Guaymas"},
	{Code: 770, Name: "San Carlos"},
	{Code: 771, Name: "Huatabampo"},
	{Code: 773, Name: "Magdalena"},
	{Code: 776, Name: "Nacozari de García"},
	{Code: 777, Name: "Navojoa"},
	{Code: 778, Name: "Nogales"},
	{Code: 779, Name: "Puerto Peñasco"},
	{Code: 780, Name: "San Luis Río Colorado"},
	{Code: 790, Name: "Tamulte"},
	{Code: 790, Name: "Villa Hermosa"},
	{Code: 792, Name: "Cárdenas"},
	{Code: 793, Name: "Ciudad Pemex"},
	{Code: 794, Name: "Comalcalco"},
	{Code: 796, Name: "Emiliano Zapata"},
	{Code: 797, Name: "Frontera"},
	{Code: 798, Name: "Huimanguillo"},
	{Code: 800, Name: "Jalpa de Méndez"},
	{Code: 802, Name: "Macuspana"},
	{Code: 803, Name: "Nacajuca"},
	{Code: 804, Name: "Paraíso"},
	{Code: 805, Name: "Tacotalpa"},
	{Code: 806, Name: "Teapa"},
	{Code: 807, Name: "Tenosique"},
	{Code: 810, Name: "Ciudad Victoria"},
	{Code: 811, Name: "Altamira"},
	{Code: 813, Name: "Ciudad Madero"},
	{Code: 813, Name: "Tampico"},
	{Code: 814, Name: "Ciudad Mante"},
	{Code: 818, Name: "Matamoros"},
	{Code: 821, Name: "Colombia"},
	{Code: 821, Name: "Nuevo Laredo"},
	{Code: 822, Name: "Reynosa"},
	{Code: 823, Name: "Río Bravo"},
	{Code: 825, Name: "Soto La Marina"},
	{Code: 826, Name: "Valle Hermoso"},
	{Code: 830, Name: "Tlaxcala"},
	{Code: 832, Name: "Apizaco"},
	{Code: 834, Name: "Santa Ana Chiautempan"},
	{Code: 840, Name: "Jalapa"},
	{Code: 841, Name: "Acayucan"},
	{Code: 843, Name: "Agua Dulce"},
	{Code: 845, Name: "Álamo"},
	{Code: 846, Name: "Altotonga"},
	{Code: 848, Name: "Banderilla"},
	{Code: 849, Name: "Boca del Río"},
	{Code: 852, Name: "Ciudad Mendoza"},
	{Code: 853, Name: "Coatepec"},
	{Code: 854, Name: "Coatzacoalcos"},
	{Code: 855, Name: "Córdoba"},
	{Code: 856, Name: "Cosamaloapan"},
	{Code: 860, Name: "Cuitláhuac"},
	{Code: 863, Name: "Fortín de las Flores"},
	{Code: 864, Name: "Gutiérrez Zamora"},
	{Code: 865, Name: "Huatusco"},
	{Code: 867, Name: "Isla"},
	{Code: 868, Name: "Ixtaczoquitlán"},
	{Code: 869, Name: "Jáltipan"},
	{Code: 871, Name: "Juan Rodríguez Clara"},
	{Code: 872, Name: "Villa José Cardel"},
	{Code: 873, Name: "Las Choapas"},
	{Code: 875, Name: "Naranjos"},
	{Code: 876, Name: "Martínez de la Torre"},
	{Code: 877, Name: "Minatitlán"},
	{Code: 878, Name: "Misantla"},
	{Code: 879, Name: "Nanchital"},
	{Code: 882, Name: "Orizaba"},
	{Code: 885, Name: "Papantla"},
	{Code: 886, Name: "Perote"},
	{Code: 888, Name: "Poza Rica"},
	{Code: 889, Name: "Río Blanco"},
	{Code: 890, Name: "San Andrés Tuxtla"},
	{Code: 891, Name: "San Rafael"},
	{Code: 894, Name: "Platón Sánchez"},
	{Code: 894, Name: "Tantoyuca"},
	{Code: 895, Name: "Tempoal"},
	{Code: 898, Name: "Tierra Blanca"},
	{Code: 901, Name: "Tlapacoyan"},
	{Code: 903, Name: "Túxpam de Rodríguez Cano"},
	{Code: 905, Name: "Cd. Industrial Framboyan"},
	{Code: 905, Name: "Veracruz"},
	{Code: 910, Name: "Mérida"},
	{Code: 913, Name: "Motul"},
	{Code: 914, Name: "Oxkutzcab"},
	{Code: 915, Name: "Progreso"},
	{Code: 917, Name: "Ticul"},
	{Code: 918, Name: "Tizimín"},
	{Code: 920, Name: "Valladolid"},
	{Code: 930, Name: "Zacatecas"},
	{Code: 933, Name: "Fresnillo"},
	{Code: 934, Name: "Guadalupe"},
	{Code: 935, Name: "Jalpa"},
	{Code: 936, Name: "Jerez de G. Salinas"},
	{Code: 938, Name: "Juchipila"},
	{Code: 939, Name: "Loreto"},
	{Code: 946, Name: "Nochistlán"},
	{Code: 958, Name: "Valparaíso"},
	{Code: 960, Name: "Calera de V. Rosales"},
}
