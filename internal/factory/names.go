package factory

// firstNames and lastNames are uniform draw pools for generated players.
// Neither pool models any real person; names are recombined freely.
var firstNames = []string{
	"Aaron", "Adrian", "Alan", "Albert", "Alex", "Alonzo", "Amir", "Andre", "Andres", "Anthony",
	"Antoine", "Antonio", "Ari", "Arman", "Armando", "Arnold", "Austin", "Bailey", "Barry", "Ben",
	"Bennett", "Bilal", "Blake", "Brad", "Brady", "Brandon", "Brett", "Brian", "Bryce", "Caleb",
	"Cameron", "Carl", "Carlos", "Carter", "Cedric", "Chad", "Charles", "Chase", "Chris", "Christian",
	"Clarence", "Clay", "Clint", "Cody", "Cole", "Colin", "Conner", "Corey", "Cory", "Craig",
	"Curtis", "Dale", "Dallas", "Damian", "Damien", "Damon", "Dane", "Daniel", "Dante", "Darian",
	"Darius", "Darnell", "Darrel", "Darryl", "David", "Davion", "Dawson", "Dean", "Deandre", "Demarco",
	"Denis", "Dennis", "Derek", "Derrick", "Deshawn", "Desmond", "Devin", "Devon", "Diego", "Dillon",
	"Dominic", "Donavan", "Donovan", "Dorian", "Doug", "Drake", "Drew", "Dustin", "Dwayne", "Dylan",
	"Earl", "Ed", "Eddie", "Edgar", "Edmund", "Eduardo", "Edward", "Edwin", "Elias", "Elijah",
	"Elliot", "Emanuel", "Emilio", "Emmanuel", "Eric", "Erik", "Ernest", "Ethan", "Eugene", "Evan",
	"Ezekiel", "Fabian", "Felix", "Fernando", "Francis", "Francisco", "Frank", "Franklin", "Gabriel", "Gary",
	"Gavin", "George", "Gerald", "Gil", "Giovanni", "Glenn", "Gordon", "Grady", "Graham", "Grant",
	"Gregory", "Hank", "Harold", "Harrison", "Hector", "Henry", "Hugo", "Ian", "Isaac", "Isaiah",
	"Ivan", "Jabari", "Jace", "Jack", "Jackson", "Jacob", "Jaden", "Jalen", "Jamal", "Jamar",
	"James", "Jamie", "Jared", "Jarrett", "Jason", "Javier", "Jayden", "Jaylen", "Jeff", "Jeremiah",
	"Jeremy", "Jermaine", "Jerome", "Jerry", "Jesse", "Jesus", "Jimmy", "Joel", "Joey", "John",
	"Johnny", "Jonas", "Jonathan", "Jordan", "Jorge", "Jose", "Joseph", "Josh", "Joshua", "Josiah",
	"Juan", "Julian", "Julio", "Justin", "Kaden", "Kai", "Kaleb", "Kareem", "Keegan", "Keith",
	"Kelvin", "Kendall", "Kendrick", "Kenneth", "Kenny", "Kent", "Kevin", "Khalid", "Kobe", "Kyle",
	"Lamar", "Landon", "Lane", "Lanny", "Larry", "Lawrence", "Leo", "Leon", "Leonard", "Leroy",
	"Levi", "Liam", "Lorenzo", "Louis", "Lucas", "Luis", "Luke", "Malcolm", "Malik", "Manuel",
	"Marco", "Marcus", "Mario", "Mark", "Marquis", "Marshall", "Martin", "Marvin", "Mason", "Mateo",
	"Mathew", "Matthew", "Maurice", "Max", "Maxwell", "Michael", "Miguel", "Mike", "Miles", "Milton",
	"Mitchell", "Morgan", "Nasir", "Nathan", "Nathaniel", "Nelson", "Neil", "Nicholas", "Nick", "Nico",
	"Noah", "Nolan", "Oliver", "Omar", "Orlando", "Oscar", "Owen", "Pablo", "Patrick", "Paul",
	"Pedro", "Perry", "Peter", "Philip", "Phillip", "Preston", "Quentin", "Quincy", "Quinn", "Rafael",
	"Ramon", "Randall", "Randy", "Raul", "Ray", "Raymond", "Reggie", "Reuben", "Rex", "Ricardo",
	"Richard", "Ricky", "Robert", "Rodney", "Rodrigo", "Roger", "Roman", "Romeo", "Ron", "Ronald",
	"Rory", "Ross", "Roy", "Ruben", "Russell", "Ryan", "Sam", "Samuel", "Santiago", "Scott",
	"Sean", "Sergio", "Seth", "Shane", "Shawn", "Shelton", "Simon", "Spencer", "Stefan", "Stephen",
	"Steven", "Stuart", "Terrance", "Terrell", "Terrence", "Terry", "Theo", "Theodore", "Thomas", "Tim",
	"Timothy", "Tobias", "Todd", "Tomas", "Tony", "Tracy", "Travis", "Trent", "Trevon", "Trevor",
	"Tristan", "Troy", "Tyler", "Tyrese", "Tyrone", "Tyson", "Vance", "Vernon", "Victor", "Vince",
	"Vincent", "Virgil", "Wade", "Walter", "Warren", "Wayne", "Wendell", "Wesley", "Will", "William",
	"Xavier", "Zachary", "Zane", "Zion",
}

var lastNames = []string{
	"Abbott", "Adams", "Aguilar", "Alexander", "Allen", "Alvarado", "Alvarez", "Anderson", "Andrews", "Archer",
	"Armstrong", "Arnold", "Ashford", "Bailey", "Baker", "Baldwin", "Ball", "Banks", "Barber", "Barnes",
	"Barrett", "Bates", "Beck", "Bell", "Bennett", "Benson", "Berg", "Berry", "Bishop", "Black",
	"Blair", "Blake", "Bolton", "Booker", "Boone", "Bowen", "Bowman", "Boyd", "Bradley", "Brady",
	"Brewer", "Briggs", "Brock", "Brooks", "Brown", "Bryant", "Buchanan", "Burke", "Burns", "Burton",
	"Butler", "Byrd", "Cabrera", "Cain", "Calhoun", "Cameron", "Campbell", "Cannon", "Cantrell", "Carpenter",
	"Carr", "Carroll", "Carson", "Carter", "Case", "Castillo", "Castro", "Chambers", "Chandler", "Chapman",
	"Chavez", "Christensen", "Church", "Clark", "Clarke", "Clay", "Cline", "Cobb", "Cohen", "Cole",
	"Coleman", "Collier", "Collins", "Compton", "Conley", "Conrad", "Contreras", "Cook", "Cooper", "Cortez",
	"Cox", "Craig", "Crane", "Crawford", "Cross", "Cruz", "Cummings", "Cunningham", "Curtis", "Dalton",
	"Daniels", "Davidson", "Davis", "Dawson", "Day", "Dean", "Decker", "Delgado", "Diaz", "Dixon",
	"Dodson", "Dominguez", "Donovan", "Dorsey", "Douglas", "Downs", "Doyle", "Duffy", "Duncan", "Dunn",
	"Eaton", "Edwards", "Elliott", "Ellis", "Emerson", "England", "Erickson", "Espinoza", "Estrada", "Evans",
	"Farrell", "Faulkner", "Ferguson", "Fields", "Fischer", "Fisher", "Fitzgerald", "Fleming", "Fletcher", "Flores",
	"Flynn", "Ford", "Foster", "Fowler", "Fox", "Franco", "Franklin", "Frazier", "Freeman", "French",
	"Frost", "Fuller", "Gaines", "Gallagher", "Gallegos", "Galloway", "Gamble", "Garcia", "Gardner", "Garrett",
	"Garrison", "Garza", "Gates", "George", "Gibbs", "Gibson", "Gilbert", "Gill", "Gillespie", "Glass",
	"Glenn", "Glover", "Goldberg", "Gomez", "Gonzales", "Gonzalez", "Goodman", "Goodwin", "Gordon", "Gould",
	"Graham", "Grant", "Graves", "Gray", "Green", "Greene", "Greer", "Gregory", "Griffin", "Griffith",
	"Grimes", "Guerra", "Guerrero", "Gutierrez", "Guzman", "Hale", "Hall", "Hamilton", "Hammond", "Hancock",
	"Haney", "Hansen", "Hanson", "Hardin", "Harmon", "Harper", "Harrington", "Harris", "Harrison", "Hart",
	"Hartman", "Harvey", "Hawkins", "Hayes", "Haynes", "Heath", "Henderson", "Henry", "Hernandez", "Herrera",
	"Hess", "Hewitt", "Hickman", "Hicks", "Higgins", "Hill", "Hines", "Hobbs", "Hodge", "Hoffman",
	"Holland", "Holloway", "Holmes", "Holt", "Hood", "Hopkins", "Horn", "Horton", "Houston", "Howard",
	"Howell", "Huang", "Hubbard", "Hudson", "Huff", "Huffman", "Hughes", "Hunt", "Hunter", "Hurley",
	"Hutchinson", "Ibarra", "Ingram", "Irwin", "Jackson", "Jacobs", "James", "Jefferson", "Jennings", "Jensen",
	"Jimenez", "Johnson", "Johnston", "Jones", "Jordan", "Joseph", "Joyce", "Juarez", "Kane", "Kaufman",
	"Keller", "Kelley", "Kelly", "Kennedy", "Kent", "Kerr", "Kidd", "Kim", "King", "Kirby",
	"Klein", "Knapp", "Knight", "Knox", "Koch", "Kramer", "Lamb", "Lambert", "Lancaster", "Landry",
	"Lane", "Lang", "Larsen", "Larson", "Lawrence", "Lawson", "Leach", "Leblanc", "Lee", "Leon",
	"Leonard", "Lester", "Levine", "Lewis", "Lindsey", "Little", "Logan", "Long", "Lopez", "Love",
	"Lowe", "Lowery", "Lucas", "Luna", "Lynch", "Lyons", "Macdonald", "Mack", "Maddox", "Malone",
	"Mann", "Manning", "Marsh", "Marshall", "Martin", "Martinez", "Mason", "Massey", "Mathis", "Maxwell",
	"May", "Mccall", "Mccarthy", "Mcdaniel", "Mcdonald", "Mcguire", "Mckenzie", "Mcknight", "Mclaughlin", "Mcneil",
	"Medina", "Melton", "Mendez", "Mendoza", "Mercer", "Merritt", "Meyer", "Meyers", "Michael", "Middleton",
	"Miles", "Miller", "Mills", "Mitchell", "Molina", "Monroe", "Montgomery", "Moody", "Moon", "Moore",
	"Morales", "Moran", "Moreno", "Morgan", "Morrow", "Morse", "Morton", "Moss", "Mueller", "Mullins",
	"Munoz", "Murphy", "Murray", "Myers", "Nash", "Navarro", "Nelson", "Newman", "Newton", "Nichols",
	"Nielsen", "Nixon", "Noble", "Norman", "Norris", "Nunez", "Obrien", "Ochoa", "Oconnor", "Odom",
	"Oliver", "Olsen", "Olson", "Ortega", "Ortiz", "Osborne", "Owen", "Owens", "Pace", "Pacheco",
}
