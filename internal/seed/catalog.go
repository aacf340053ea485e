package seed

import "github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"

// Catalog is the reference dataset: the universities and institutes of
// Luanda shown on the map. 24 records, written once into an empty database
// in this order.
var Catalog = []model.Institution{
	{
		Name:      "Universidade Agostinho Neto (UAN)",
		Category:  "University",
		Latitude:  -8.9555,
		Longitude: 13.1633,
		Details:   "Campus Universitário da Camama",
		Website:   "https://www.uan.ao",
		Ranking:   "Top 1-2 em Angola",
		Courses:   "Engenharia (Civil, Informática, Minas), Medicina, Direito, Economia, Ciências (Biologia, Química), Letras",
	},
	{
		Name:      "Universidade Católica de Angola (UCAN)",
		Category:  "University",
		Latitude:  -8.8258,
		Longitude: 13.2555,
		Details:   "Rua N. Sra. da Muxima",
		Website:   "https://ucan.edu.ao",
		Ranking:   "Top 3 em Angola",
		Courses:   "Direito, Economia, Gestão, Engenharia Informática, Psicologia, Teologia, Engenharia de Telecomunicações",
	},
	{
		Name:      "Universidade Metodista de Angola",
		Category:  "University",
		Latitude:  -8.8185,
		Longitude: 13.2431,
		Details:   "Kinaxixi",
		Website:   "https://uma.ao",
		Ranking:   "Top 5-10 em Angola",
		Courses:   "Arquitetura, Eng. Civil, Direito, Economia, Gestão, Fisioterapia, Análises Clínicas, Enfermagem",
	},
	{
		Name:      "Instituto Superior Politécnico de Tecnologias e Ciências (ISPTEC)",
		Category:  "Institute",
		Latitude:  -8.9329,
		Longitude: 13.1762,
		Details:   "Talatona",
		Website:   "https://www.isptec.co.ao",
		Ranking:   "Alta Qualidade Técnica",
		Courses:   "Eng. Química, Eng. Mecânica, Eng. Informática, Eng. Civil, Economia, Gestão",
	},
	{
		Name:      "Universidade Lusíada de Angola",
		Category:  "University",
		Latitude:  -8.8368,
		Longitude: 13.2185,
		Details:   "Largo Lusiada",
		Website:   "https://www.ulusiada.ao",
		Ranking:   "Reconhecida",
		Courses:   "Direito, Arquitetura, Economia, Gestão, Psicologia, Relações Internacionais, Informática",
	},
	{
		Name:      "Universidade Técnica de Angola (UTANGA)",
		Category:  "University",
		Latitude:  -8.8788,
		Longitude: 13.2655,
		Details:   "Capolo II",
		Website:   "https://www.utanga.co.ao",
		Ranking:   "Top 10 (Webometrics)",
		Courses:   "Eng. Geologia e Minas, Eng. Informática, Eng. Telecomunicações, Arquitetura, Direito, Psicologia, Gestão",
	},
	{
		Name:      "Universidade Privada de Angola (UPRA)",
		Category:  "University",
		Latitude:  -8.9161,
		Longitude: 13.1944,
		Details:   "Talatona",
		Website:   "https://upra.ao",
		Ranking:   "Boa Reputação Saúde",
		Courses:   "Medicina, Odontologia, Enfermagem, Fisioterapia, Eng. Civil, Arquitetura, Comunicação Social, Relações Internacionais",
	},
	{
		Name:      "Universidade de Belas",
		Category:  "University",
		Latitude:  -8.9145,
		Longitude: 13.1850,
		Details:   "Benfica/Talatona",
		Website:   "https://www.unibelas-angola.com",
		Ranking:   "N/A",
		Courses:   "Direito, Psicologia, Fisioterapia, Enfermagem, Gestão Hospitalar, Eng. Petróleo, Eng. Informática",
	},
	{
		Name:      "Universidade Independente de Angola (UnIA)",
		Category:  "University",
		Latitude:  -8.9220,
		Longitude: 13.1915,
		Details:   "Morro Bento",
		Website:   "https://unia.ao",
		Ranking:   "N/A",
		Courses:   "Eng. Civil, Eng. Informática, Direito, Economia, Arquitetura, Ciências da Comunicação",
	},
	{
		Name:      "Universidade Jean Piaget de Angola",
		Category:  "University",
		Latitude:  -8.9350,
		Longitude: 13.3510,
		Details:   "Viana",
		Website:   "https://unipiaget-angola.org",
		Ranking:   "N/A",
		Courses:   "Medicina, Enfermagem, Farmácia, Direito, Eng. Civil, Eng. Petróleos, Economia",
	},
	{
		Name:      "Universidade Gregório Semedo",
		Category:  "University",
		Latitude:  -8.8650,
		Longitude: 13.2900,
		Details:   "Talatona",
		Website:   "https://www.ugs.edu.ao",
		Ranking:   "N/A",
		Courses:   "Direito, Gestão Comercial e Marketing, Eng. Informática, Organização e Gestão de Empresas",
	},
	{
		Name:      "Instituto Superior de Ciências Sociais e Relações Internacionais (CIS)",
		Category:  "Institute",
		Latitude:  -8.9250,
		Longitude: 13.1950,
		Details:   "Talatona",
		Website:   "https://cis-edu.ao",
		Ranking:   "N/A",
		Courses:   "Relações Internacionais, Ciência Política, Direito, Economia, Gestão de RH, Psicologia",
	},
	{
		Name:      "Universidade de Luanda (UniLuanda)",
		Category:  "University",
		Latitude:  -8.9400,
		Longitude: 13.1800,
		Details:   "Sapu, Talatona",
		Website:   "https://www.uniluanda.ao",
		Ranking:   "Emergente",
		Courses:   "Eng. Telecomunicações (Ex-ISUTIC), Artes, Serviço Social, Gestão",
	},
	{
		Name:      "Instituto Superior Técnico de Angola (ISTA)",
		Category:  "Institute",
		Latitude:  -8.8450,
		Longitude: 13.2800,
		Details:   "Palanca",
		Website:   "http://www.ista-angola.com",
		Ranking:   "N/A",
		Courses:   "Eng. Informática, Eng. Telecomunicações, Direito, Psicologia, Comunicação Social",
	},
	{
		Name:      "Universidade Óscar Ribas",
		Category:  "University",
		Latitude:  -8.9216,
		Longitude: 13.1830,
		Details:   "Talatona",
		Website:   "https://www.uor.edu.ao",
		Ranking:   "N/A",
		Courses:   "Direito, Psicologia, Relações Internacionais, Eng. Civil, Eng. Informática, Gestão e Marketing",
	},
	{
		Name:      "Instituto Superior de Telecomunicações (ISUTIC)",
		Category:  "Institute",
		Latitude:  -8.8195,
		Longitude: 13.2676,
		Details:   "Rangel",
		Website:   "https://www.isutic.gov.ao",
		Ranking:   "Especializada TI",
		Courses:   "Eng. Telecomunicações, Eng. Informática",
	},
	{
		Name:      "Instituto Superior Politécnico do Cazenga (ISPOCA)",
		Category:  "Institute",
		Latitude:  -8.8162,
		Longitude: 13.3172,
		Details:   "Cazenga",
		Website:   "https://ispoca.ao",
		Ranking:   "Regional",
		Courses:   "Enfermagem, Direito, Arquitetura, Eng. Informática, Gestão",
	},
	{
		Name:      "Instituto Superior Dom Bosco",
		Category:  "Institute",
		Latitude:  -8.8400,
		Longitude: 13.2650,
		Details:   "Palanca",
		Website:   "https://dombosco.ao",
		Ranking:   "Filosófico/Pedagógico",
		Courses:   "Filosofia, Pedagogia, Educação",
	},
	{
		Name:      "Instituto Superior João Paulo II",
		Category:  "Institute",
		Latitude:  -8.8280,
		Longitude: 13.2350,
		Details:   "Maianga",
		Website:   "https://isupjpii.edu.ao",
		Ranking:   "Católica",
		Courses:   "Ciências Sociais, Educação Moral, Serviço Social",
	},
	{
		Name:      "Instituto Superior Politécnico Alvorecer da Juventude (ISPAJ)",
		Category:  "Institute",
		Latitude:  -8.8750,
		Longitude: 13.2100,
		Details:   "Nova Vida",
		Website:   "https://ispaj.co.ao",
		Ranking:   "N/A",
		Courses:   "Direito, Economia, Gestão, Eng. Informática, Relações Internacionais",
	},
	{
		Name:      "Instituto Superior de Ciências da Educação (ISCED)",
		Category:  "Institute",
		Latitude:  -8.9100,
		Longitude: 13.1900,
		Details:   "Belas",
		Website:   "https://isced.edu.ao",
		Ranking:   "Educação",
		Courses:   "Ensino de (História, Matemática, Francês, Inglês, Português), Ciências da Educação",
	},
	{
		Name:      "Instituto Superior de Ciências de Saúde (ISCISA)",
		Category:  "Institute",
		Latitude:  -8.8250,
		Longitude: 13.2340,
		Details:   "Luanda",
		Website:   "https://iscisa.ao",
		Ranking:   "Saúde Pública",
		Courses:   "Enfermagem, Farmácia, Psicologia Clínica, Análises Clínicas",
	},
	{
		Name:      "Academia de Ciências Sociais e Tecnologias (ACITE)",
		Category:  "Institute",
		Latitude:  -8.8900,
		Longitude: 13.2200,
		Details:   "Kilamba Kiaxi",
		Website:   "#",
		Ranking:   "Especializada",
		Courses:   "Ciências Sociais, Tecnologias, Segurança",
	},
	{
		Name:      "Instituto Superior Politécnico Metropolitano de Angola (IMETRO)",
		Category:  "Institute",
		Latitude:  -8.9280,
		Longitude: 13.1880,
		Details:   "Morro Bento",
		Website:   "https://www.imetro.ao",
		Ranking:   "N/A",
		Courses:   "Gestão, Direito, Economia, Eng. Informática, Cinema e TV",
	},
}
